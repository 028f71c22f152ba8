package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// ParameterClient is the part of the SSM API used to read secrets.
type ParameterClient interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// ParameterStore reads decrypted SSM parameters.
type ParameterStore struct {
	client ParameterClient
}

func NewParameterStore(client ParameterClient) ParameterStore {
	return ParameterStore{client: client}
}

// Get returns the trimmed value of parameter name.
func (p ParameterStore) Get(ctx context.Context, name string) (string, error) {
	out, err := p.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("reading parameter %s: %w", name, err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", fmt.Errorf("parameter %s has no value", name)
	}
	return strings.TrimSpace(*out.Parameter.Value), nil
}
