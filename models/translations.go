package models

var translations = map[Language]map[string]string{
	English: {
		"nav_home":          "Home",
		"nav_projects":      "Projects",
		"nav_skills":        "Skills",
		"nav_experience":    "Experience",
		"nav_contact":       "Contact",
		"hero_greeting":     "Hi, I'm",
		"hero_download":     "Download resume",
		"hero_preview":      "Preview",
		"about_title":       "About",
		"about_highlight_1": "Experience in mobile and web development",
		"about_highlight_2": "Passionate about UI/UX and minimalist design",
		"about_highlight_3": "Always keeping up with technology trends",
		"projects_title":    "Shipped Projects",
		"projects_view":     "View Project",
		"projects_details":  "View Details",
		"projects_live":     "Visit Live Site",
		"projects_github":   "View on GitHub",
		"projects_no_link":  "Links are currently not available for this project.",
		"exp_title":         "Work Experience",
		"edu_title":         "Education",
		"skills_title":      "Technical Skills",
		"skills_subtitle":   "A complete toolkit to bring your projects to life.",
		"contact_title":     "Get in touch",
		"contact_subtitle":  "Whether it's a freelance gig, a collaboration, or a full-time opportunity.",
		"contact_name":      "Full Name",
		"contact_email":     "Email Address",
		"contact_message":   "Your Message",
		"contact_send":      "Send Message",
		"footer_rights":     "Copyright©",
	},
	French: {
		"nav_home":          "Accueil",
		"nav_projects":      "Projets",
		"nav_skills":        "Compétences",
		"nav_experience":    "Expérience",
		"nav_contact":       "Contact",
		"hero_greeting":     "Salut, Je suis",
		"hero_download":     "Télécharger CV",
		"hero_preview":      "Aperçu",
		"about_title":       "À Propos",
		"about_highlight_1": "Expérience en développement mobile et web",
		"about_highlight_2": "Passionné par l'UI/UX et le design minimaliste",
		"about_highlight_3": "Toujours en veille technologique",
		"projects_title":    "Projets Réalisés",
		"projects_view":     "Voir Projet",
		"projects_details":  "Voir Détails",
		"projects_live":     "Voir le Site",
		"projects_github":   "Voir sur GitHub",
		"projects_no_link":  "Les liens ne sont pas disponibles pour ce projet.",
		"exp_title":         "Expérience Professionnelle",
		"edu_title":         "Formation",
		"skills_title":      "Compétences Techniques",
		"skills_subtitle":   "Une boîte à outils complète pour donner vie à vos projets.",
		"contact_title":     "Contactez-moi",
		"contact_subtitle":  "Que ce soit pour une mission freelance, une collaboration ou un poste à temps plein.",
		"contact_name":      "Nom Complet",
		"contact_email":     "Adresse Email",
		"contact_message":   "Votre Message",
		"contact_send":      "Envoyer",
		"footer_rights":     "Droits d'auteur©",
	},
}

// Translate returns the UI string for key, or key itself when unknown.
func Translate(lang Language, key string) string {
	if s, ok := translations[lang][key]; ok {
		return s
	}
	return key
}

// Translations returns a copy of the whole table of lang.
func Translations(lang Language) map[string]string {
	table := translations[lang]
	out := make(map[string]string, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out
}
