// Package content is the static portfolio catalog rendered by the pages.
// Everything here is immutable data; the accessors return copies.
package content

// Social is an external profile link.
type Social struct {
	Label string
	Href  string
}

// FloatingIcon decorates the home hero.
type FloatingIcon struct {
	Icon  string
	Label string
}

// Profile is the portfolio owner.
type Profile struct {
	Name       string
	Initials   string
	Role       string // typed out on the home page
	Tagline    string
	Bio        string
	Location   string
	Experience string
	Interests  []string
	Socials    []Social
	Icons      []FloatingIcon
}

// Skill is one skill with a proficiency level in percent.
type Skill struct {
	Name  string
	Level int
}

// SkillCategory groups skills on the Skills page.
type SkillCategory struct {
	Title  string
	Icon   string
	Skills []Skill
}

// Project is one entry in the project catalog.
type Project struct {
	ID              int
	Title           string
	Description     string
	LongDescription string
	Tech            []string
	Features        []string
}

// Role is one position on the experience timeline.
type Role struct {
	Title       string
	Company     string
	Location    string
	Period      string
	Description string
	Highlights  []string
}

// ContactItem is one line of the contact info card. Href is empty when the
// item is not a link.
type ContactItem struct {
	Icon  string
	Label string
	Value string
	Href  string
}

// Heading is a page title with its subtitle. Accent is the highlighted word.
type Heading struct {
	Lead     string
	Accent   string
	Subtitle string
}

var profile = Profile{
	Name:     "Ramprasath S",
	Initials: "RS",
	Role:     "Junior Python Developer",
	Tagline:  "Building robust backend solutions with Python, Django & REST APIs",
	Bio: "I'm a passionate backend developer with expertise in Python and Django. " +
		"I love building efficient, scalable APIs and working with databases. " +
		"Currently focused on expanding my skills in full-stack development and " +
		"contributing to meaningful projects.",
	Location:   "Based in Erode, Tamil Nadu, India",
	Experience: "3 months internship at Uniq Technologies",
	Interests: []string{
		"Backend Development",
		"API Design",
		"Database Architecture",
		"Clean Code",
		"Problem Solving",
		"Tech Exploration",
	},
	Socials: []Social{
		{Label: "GitHub", Href: "https://github.com/Ramprasath37"},
		{Label: "LinkedIn", Href: "https://linkedin.com/in/ramprasath37"},
		{Label: "Email", Href: "mailto:sramprasath37@gmail.com"},
	},
	Icons: []FloatingIcon{
		{Icon: "🐍", Label: "Python"},
		{Icon: "🌐", Label: "Django"},
		{Icon: "⚡", Label: "API"},
		{Icon: "🗄️", Label: "MySQL"},
		{Icon: "🎨", Label: "CSS"},
		{Icon: "📦", Label: "Git"},
	},
}

var skills = []SkillCategory{
	{Title: "Backend", Icon: "⚙️", Skills: []Skill{
		{Name: "Python", Level: 85},
		{Name: "Django", Level: 80},
		{Name: "Django REST Framework", Level: 75},
	}},
	{Title: "Frontend", Icon: "🎨", Skills: []Skill{
		{Name: "HTML", Level: 90},
		{Name: "CSS", Level: 85},
		{Name: "Bootstrap", Level: 75},
	}},
	{Title: "Database", Icon: "🗄️", Skills: []Skill{
		{Name: "MySQL", Level: 80},
		{Name: "SQLite3", Level: 85},
	}},
	{Title: "Tools", Icon: "🛠️", Skills: []Skill{
		{Name: "Git", Level: 80},
		{Name: "Postman", Level: 85},
		{Name: "Photoshop", Level: 60},
	}},
}

var projects = []Project{
	{
		ID:          1,
		Title:       "Student Database Management System",
		Description: "A comprehensive CRUD application for managing student records with an intuitive interface.",
		LongDescription: "Built a full-featured student management system that allows administrators " +
			"to create, read, update, and delete student records. Features include search " +
			"functionality, data validation, and a responsive design that works on all devices.",
		Tech: []string{"Django", "HTML", "CSS", "SQLite3"},
		Features: []string{
			"Complete CRUD operations",
			"Search and filter functionality",
			"Form validation",
			"Responsive design",
		},
	},
	{
		ID:          2,
		Title:       "Personal Expense Tracker API",
		Description: "RESTful API for tracking personal expenses with JWT authentication.",
		LongDescription: "Developed a secure REST API for personal finance management. Users can " +
			"track their income and expenses, categorize transactions, and view spending " +
			"analytics. Implemented JWT-based authentication for secure access.",
		Tech: []string{"Django REST Framework", "JWT", "SQLite3"},
		Features: []string{
			"JWT Authentication",
			"Expense categorization",
			"Income tracking",
			"API documentation",
		},
	},
}

var roles = []Role{
	{
		Title:       "Junior Python Developer",
		Company:     "Uniq Technologies",
		Location:    "Internship",
		Period:      "3 Months",
		Description: "Worked on backend development using Python and Django, building RESTful APIs and database management systems.",
		Highlights: []string{
			"Developed RESTful APIs using Django REST Framework",
			"Implemented database schemas with MySQL and SQLite3",
			"Collaborated with team members on project requirements",
			"Learned industry best practices for clean code",
		},
	},
}

var contactInfo = []ContactItem{
	{Icon: "✉", Label: "Email", Value: "sramprasath37@gmail.com", Href: "mailto:sramprasath37@gmail.com"},
	{Icon: "☎", Label: "Phone", Value: "+91 73975 58428", Href: "tel:+917397558428"},
	{Icon: "⌖", Label: "Location", Value: "Erode, Tamil Nadu"},
	{Icon: "in", Label: "LinkedIn", Value: "Connect with me", Href: "https://linkedin.com/in/ramprasath37"},
}

var headings = map[string]Heading{
	"about":      {Lead: "About", Accent: "Me", Subtitle: "Get to know me better"},
	"skills":     {Lead: "My", Accent: "Skills", Subtitle: "Technologies and tools I work with to bring ideas to life"},
	"projects":   {Lead: "My", Accent: "Projects", Subtitle: "Here are some of the projects I've worked on"},
	"experience": {Lead: "My", Accent: "Experience", Subtitle: "My professional journey so far"},
	"contact":    {Lead: "Get in", Accent: "Touch", Subtitle: "I'd love to hear from you. Feel free to reach out!"},
}

// Owner returns the profile.
func Owner() Profile {
	p := profile
	p.Interests = append([]string(nil), profile.Interests...)
	p.Socials = append([]Social(nil), profile.Socials...)
	p.Icons = append([]FloatingIcon(nil), profile.Icons...)
	return p
}

// Skills returns the skill categories in display order.
func Skills() []SkillCategory {
	out := make([]SkillCategory, len(skills))
	for i, c := range skills {
		c.Skills = append([]Skill(nil), c.Skills...)
		out[i] = c
	}
	return out
}

// Projects returns the project catalog in display order.
func Projects() []Project {
	out := make([]Project, len(projects))
	for i, p := range projects {
		p.Tech = append([]string(nil), p.Tech...)
		p.Features = append([]string(nil), p.Features...)
		out[i] = p
	}
	return out
}

// ProjectByID looks up a project.
func ProjectByID(id int) (Project, bool) {
	for _, p := range Projects() {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// Roles returns the experience timeline, most recent first.
func Roles() []Role {
	out := make([]Role, len(roles))
	for i, r := range roles {
		r.Highlights = append([]string(nil), r.Highlights...)
		out[i] = r
	}
	return out
}

// ContactInfo returns the contact card lines.
func ContactInfo() []ContactItem {
	return append([]ContactItem(nil), contactInfo...)
}

// HeadingFor returns the page heading for a page key such as "skills".
func HeadingFor(page string) Heading {
	return headings[page]
}
