package catalog

// Default returns the B.Sc. Computer Science catalog.
func Default() *Catalog {
	return defaultCatalog
}

var defaultCatalog = New(
	Semester{Number: 1, Title: "First Semester", Subjects: []Subject{
		{Key: "programming-fundamentals", Title: "Programming Fundamentals", Code: "CSC101", Icon: "fas fa-code", Description: "Introduction to programming with C language"},
		{Key: "computer-fundamentals", Title: "Computer Fundamentals", Code: "CSC102", Icon: "fas fa-desktop", Description: "Basic computer concepts and architecture"},
		{Key: "mathematics-1", Title: "Mathematics I", Code: "MAT101", Icon: "fas fa-square-root-alt", Description: "Calculus and analytical geometry"},
		{Key: "english", Title: "English Communication", Code: "ENG101", Icon: "fas fa-book", Description: "Communication skills and technical writing"},
		{Key: "physics", Title: "Physics", Code: "PHY101", Icon: "fas fa-atom", Description: "Basic physics concepts for computer science"},
	}},
	Semester{Number: 2, Title: "Second Semester", Subjects: []Subject{
		{Key: "object-oriented-programming", Title: "Object Oriented Programming", Code: "CSC201", Icon: "fas fa-cubes", Description: "OOP concepts using C++ and Java"},
		{Key: "data-structures", Title: "Data Structures", Code: "CSC202", Icon: "fas fa-sitemap", Description: "Linear and non-linear data structures"},
		{Key: "discrete-mathematics", Title: "Discrete Mathematics", Code: "MAT201", Icon: "fas fa-calculator", Description: "Logic, sets, and discrete structures"},
		{Key: "digital-electronics", Title: "Digital Electronics", Code: "ELC201", Icon: "fas fa-microchip", Description: "Digital circuits and logic design"},
		{Key: "mathematics-2", Title: "Mathematics II", Code: "MAT202", Icon: "fas fa-square-root-alt", Description: "Advanced calculus and linear algebra"},
	}},
	Semester{Number: 3, Title: "Third Semester", Subjects: []Subject{
		{Key: "database-management", Title: "Database Management Systems", Code: "CSC301", Icon: "fas fa-database", Description: "Database design and SQL programming"},
		{Key: "computer-networks", Title: "Computer Networks", Code: "CSC302", Icon: "fas fa-network-wired", Description: "Network protocols and architectures"},
		{Key: "algorithms", Title: "Algorithm Analysis", Code: "CSC303", Icon: "fas fa-project-diagram", Description: "Algorithm design and complexity analysis"},
		{Key: "operating-systems", Title: "Operating Systems", Code: "CSC304", Icon: "fas fa-cogs", Description: "OS concepts and system programming"},
		{Key: "statistics", Title: "Statistics", Code: "STA301", Icon: "fas fa-chart-bar", Description: "Statistical methods for computer science"},
	}},
	Semester{Number: 4, Title: "Fourth Semester", Subjects: []Subject{
		{Key: "web-development", Title: "Web Development", Code: "CSC401", Icon: "fas fa-globe", Description: "HTML, CSS, JavaScript, and web frameworks"},
		{Key: "software-engineering", Title: "Software Engineering", Code: "CSC402", Icon: "fas fa-tools", Description: "Software development lifecycle and methodologies"},
		{Key: "computer-graphics", Title: "Computer Graphics", Code: "CSC403", Icon: "fas fa-paint-brush", Description: "Graphics programming and visualization"},
		{Key: "numerical-methods", Title: "Numerical Methods", Code: "MAT401", Icon: "fas fa-calculator", Description: "Computational mathematics and algorithms"},
		{Key: "system-analysis", Title: "System Analysis & Design", Code: "CSC404", Icon: "fas fa-drafting-compass", Description: "System design and analysis techniques"},
	}},
	Semester{Number: 5, Title: "Fifth Semester", Subjects: []Subject{
		{Key: "artificial-intelligence", Title: "Artificial Intelligence", Code: "CSC501", Icon: "fas fa-brain", Description: "AI concepts and machine learning basics"},
		{Key: "compiler-design", Title: "Compiler Design", Code: "CSC502", Icon: "fas fa-code-branch", Description: "Language processing and compiler construction"},
		{Key: "mobile-computing", Title: "Mobile Computing", Code: "CSC503", Icon: "fas fa-mobile-alt", Description: "Mobile app development and technologies"},
		{Key: "information-security", Title: "Information Security", Code: "CSC504", Icon: "fas fa-shield-alt", Description: "Cybersecurity and data protection"},
		{Key: "elective-1", Title: "Elective I", Code: "CSC505", Icon: "fas fa-star", Description: "Choose from available specialization subjects"},
	}},
	Semester{Number: 6, Title: "Sixth Semester", Subjects: []Subject{
		{Key: "project-work", Title: "Final Year Project", Code: "CSC601", Icon: "fas fa-project-diagram", Description: "Capstone project and research work"},
		{Key: "cloud-computing", Title: "Cloud Computing", Code: "CSC602", Icon: "fas fa-cloud", Description: "Cloud platforms and distributed computing"},
		{Key: "data-mining", Title: "Data Mining", Code: "CSC603", Icon: "fas fa-search", Description: "Data analysis and knowledge discovery"},
		{Key: "human-computer-interaction", Title: "Human Computer Interaction", Code: "CSC604", Icon: "fas fa-users", Description: "UI/UX design and usability principles"},
		{Key: "elective-2", Title: "Elective II", Code: "CSC605", Icon: "fas fa-star", Description: "Advanced specialization subject"},
		{Key: "internship", Title: "Industrial Training", Code: "CSC606", Icon: "fas fa-building", Description: "Practical industry experience"},
	}},
)
