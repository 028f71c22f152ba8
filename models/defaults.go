package models

var techStackIcons = []string{
	"https://cdn.jsdelivr.net/gh/devicons/devicon/icons/html5/html5-original.svg",
	"https://cdn.jsdelivr.net/gh/devicons/devicon/icons/css3/css3-original.svg",
	"https://cdn.jsdelivr.net/gh/devicons/devicon/icons/javascript/javascript-original.svg",
	"https://cdn.jsdelivr.net/gh/devicons/devicon/icons/java/java-original.svg",
	"https://cdn.jsdelivr.net/gh/devicons/devicon/icons/python/python-original.svg",
	"https://cdn.jsdelivr.net/gh/devicons/devicon/icons/php/php-original.svg",
	"https://cdn.jsdelivr.net/gh/devicons/devicon/icons/mysql/mysql-original.svg",
}

const (
	defaultAvatarURL  = "https://api.dicebear.com/7.x/avataaars/svg?seed=Felix"
	defaultAboutImage = "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"
	defaultResumeURL  = "/resume.pdf"

	imageNotion    = "https://images.unsplash.com/photo-1611162617474-5b21e879e113?q=80&w=1974&auto=format&fit=crop"
	imageNotion2   = "https://images.unsplash.com/photo-1611162616475-46b635cb6868?q=80&w=1974&auto=format&fit=crop"
	imageStylist   = "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158?q=80&w=2070&auto=format&fit=crop"
	imageStartup   = "https://images.unsplash.com/photo-1519389950473-47ba0277781c?q=80&w=2070&auto=format&fit=crop"
	imageJobPortal = "https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d?q=80&w=2070&auto=format&fit=crop"
)

var defaultSkills = []SkillCategory{
	{Title: "Front-end", Icon: "Layout", Skills: []string{"HTML", "CSS", "JavaScript", "Bootstrap"}},
	{Title: "Back-end", Icon: "Server", Skills: []string{"Php", "Firebase", "MySQL"}},
	{Title: "Mobile", Icon: "Smartphone", Skills: []string{"Android (Java)", "Flutter"}},
}

var defaultsEN = Snapshot{
	PersonalInfo: PersonalInfo{
		Name:           "CHAFAI Oussama",
		Role:           "Web & Mobile Developer",
		Title:          "Web & Mobile Developer",
		Bio:            "Passionate developer creating Java solutions and AI applications. I love solving complex problems and building performant user interfaces.",
		AboutText:      "I'm a passionate developer and AI student based in Morocco. I have a solid background in digital development and am currently pursuing a degree in Artificial Intelligence. My goal is to combine these two worlds to create smart and intuitive applications.",
		Email:          "contact@example.com",
		Phone:          "+212675186432",
		Location:       "Morocco",
		Linkedin:       "https://www.linkedin.com/in/oussama-chafai-99a81a1a9/",
		Github:         "https://github.com",
		AvatarURL:      defaultAvatarURL,
		TechStackIcons: techStackIcons,
		AboutImage:     defaultAboutImage,
		ResumeURL:      defaultResumeURL,
	},
	Projects: []Project{
		{
			ID:          1,
			Title:       "Notion App Clone",
			Description: "An all-in-one collaborative workspace. Real-time document editing, databases, and task management.",
			Tags:        []string{"Next.js", "React", "Convex"},
			Image:       imageNotion,
			Screenshots: []string{imageNotion, imageNotion2},
			Github:      "#",
			Link:        "#",
		},
		{
			ID:          2,
			Title:       "Halamd AI Stylist",
			Description: "Your intelligent fashion companion. AI style analysis and personalized outfit recommendations.",
			Tags:        []string{"AI", "Python", "React"},
			Image:       imageStylist,
			Screenshots: []string{imageStylist},
			Github:      "#",
			Link:        "#",
		},
		{
			ID:          3,
			Title:       "StartupFounder",
			Description: "A sleek platform for startup founders to showcase their projects and find investors.",
			Tags:        []string{"React", "Tailwind", "Node.js"},
			Image:       imageStartup,
			Github:      "#",
			Link:        "#",
		},
		{
			ID:          4,
			Title:       "Job Portal",
			Description: "Fully responsive job portal with authentication and dashboards for recruiters.",
			Tags:        []string{"MERN Stack", "Redux"},
			Image:       imageJobPortal,
			Github:      "#",
			Link:        "#",
		},
	},
	Experiences: []Experience{
		{ID: 2, Role: "Full Stack Developer", Company: "Freelance", Period: "2023 - Present", Description: "Developing web and mobile solutions for various clients."},
	},
	Education: []Education{
		{ID: 1, Degree: "Bachelor in AI", School: "University / School", Period: "2024 - Present", Description: "Machine Learning & Data Science"},
		{ID: 3, Degree: "Digital Dev Technician", School: "OFPPT", Period: "2021 - 2023", Description: "Intensive training in software development."},
	},
	Skills: defaultSkills,
}

var defaultsFR = Snapshot{
	PersonalInfo: PersonalInfo{
		Name:           "CHAFAI Oussama",
		Role:           "Développeur Web & Mobile",
		Title:          "Développeur Web & Mobile",
		Bio:            "Développeur passionné par la création de solutions Java et l'intelligence artificielle. J'adore résoudre des problèmes complexes et créer des interfaces utilisateur performantes.",
		AboutText:      "Je suis un développeur passionné et étudiant en IA basé au Maroc. J'ai une formation solide en développement digital et je poursuis actuellement une licence en Intelligence Artificielle. Mon objectif est de combiner ces deux mondes pour créer des applications intelligentes et intuitives.",
		Email:          "contact@example.com",
		Phone:          "+212675186432",
		Location:       "Maroc",
		Linkedin:       "https://www.linkedin.com/in/oussama-chafai-99a81a1a9/",
		Github:         "https://github.com",
		AvatarURL:      defaultAvatarURL,
		TechStackIcons: techStackIcons,
		AboutImage:     defaultAboutImage,
		ResumeURL:      defaultResumeURL,
	},
	Projects: []Project{
		{
			ID:          1,
			Title:       "Clone App Notion",
			Description: "Un espace de travail collaboratif tout-en-un. Édition de documents en temps réel, bases de données et gestion de tâches.",
			Tags:        []string{"Next.js", "React", "Convex"},
			Image:       imageNotion,
			Screenshots: []string{imageNotion, imageNotion2},
			Github:      "#",
			Link:        "#",
		},
		{
			ID:          2,
			Title:       "Halamd AI Stylist",
			Description: "Votre compagnon de mode intelligent. Analyse de style par IA et recommandations personnalisées de tenues.",
			Tags:        []string{"AI", "Python", "React"},
			Image:       imageStylist,
			Screenshots: []string{imageStylist},
			Github:      "#",
			Link:        "#",
		},
		{
			ID:          3,
			Title:       "StartupFounder",
			Description: "Une plateforme élégante pour les fondateurs de startups pour présenter leurs projets et trouver des investisseurs.",
			Tags:        []string{"React", "Tailwind", "Node.js"},
			Image:       imageStartup,
			Github:      "#",
			Link:        "#",
		},
		{
			ID:          4,
			Title:       "Portail d'emploi",
			Description: "Portail d'emploi entièrement réactif avec authentification et tableaux de bord pour les recruteurs.",
			Tags:        []string{"MERN Stack", "Redux"},
			Image:       imageJobPortal,
			Github:      "#",
			Link:        "#",
		},
	},
	Experiences: []Experience{
		{ID: 2, Role: "Développeur Full Stack", Company: "Freelance", Period: "2023 - Présent", Description: "Développement de solutions web et mobiles pour divers clients."},
	},
	Education: []Education{
		{ID: 1, Degree: "Licence en Intelligence Artificielle", School: "Université / École", Period: "2024 - Présent", Description: "Machine Learning & Data Science"},
		{ID: 3, Degree: "Technicien Dév. Digital", School: "OFPPT", Period: "2021 - 2023", Description: "Formation intensive en développement logiciel."},
	},
	Skills: defaultSkills,
}

// Defaults returns a fresh copy of the compiled-in content of lang.
// Unknown languages get the English content.
func Defaults(lang Language) Snapshot {
	if lang == French {
		return defaultsFR.Clone()
	}
	return defaultsEN.Clone()
}
