package app

import "github.com/aadhya/eduverse/internal/domain"

var seedCompanyInfo = domain.CompanyInfo{
	Name:       "Aadhya Eduverse Private Limited",
	Tagline:    "Empowering Education Through Technology",
	About:      "Aadhya Eduverse is a leading educational technology company specializing in AI-powered learning solutions and professional training services. We are committed to bridging the gap between education and industry by providing cutting-edge technology solutions and comprehensive training programs.",
	Email:      "contact@aadhyaeduverse.com",
	Phone:      "+91 9876543210",
	Address:    "123 Tech Park, Innovation Street, Bangalore, India",
	LogoUrl:    "/images/logo.png",
	WebsiteUrl: "https://www.aadhyaeduverse.com",
}

var seedProducts = []domain.Product{
	{
		Name:             "Explainable AI Platform",
		ShortDescription: "AI-powered educational platform with transparent decision-making",
		Description:      "Our Explainable AI Platform is designed specifically for educational contexts, providing transparent insights into how AI makes decisions. This platform helps educators understand the reasoning behind AI-generated recommendations, making it easier to trust and implement AI solutions in educational settings. Features include learning path recommendations, student performance analysis, and personalized content delivery, all with clear explanations of the underlying AI logic.",
		ImageUrl:         "/images/products/explainable-ai.jpg",
		ProductUrl:       "/products/explainable-ai",
	},
	{
		Name:             "EduVerse LMS",
		ShortDescription: "Comprehensive Learning Management System for educational institutions",
		Description:      "EduVerse LMS is a complete learning management solution designed for schools, colleges, and training institutes. It offers course management, student tracking, assessment tools, and interactive learning features. The platform integrates seamlessly with our Explainable AI to provide personalized learning experiences while maintaining full transparency in how content and assessments are tailored to individual students.",
		ImageUrl:         "/images/products/eduverse-lms.jpg",
		ProductUrl:       "/products/eduverse-lms",
	},
	{
		Name:             "SkillTrack Analytics",
		ShortDescription: "Skill assessment and tracking platform for career development",
		Description:      "SkillTrack Analytics helps students and professionals identify skill gaps and track their progress toward career goals. Using advanced data analytics and industry benchmarks, the platform provides actionable insights and personalized learning recommendations. The system integrates with popular job portals to align skill development with current market demands, ensuring that learners focus on the most relevant competencies for their chosen career paths.",
		ImageUrl:         "/images/products/skilltrack.jpg",
		ProductUrl:       "/products/skilltrack",
	},
}

var seedServices = []domain.Service{
	{
		Name:             "Java Programming Training",
		Category:         domain.CategoryTraining,
		ShortDescription: "Comprehensive Java training from basics to advanced concepts",
		Description:      "Our Java Programming Training covers everything from core Java fundamentals to advanced topics like multithreading, collections, and design patterns. The course includes hands-on projects, real-world applications, and industry best practices. Suitable for beginners and intermediate programmers looking to enhance their Java skills for enterprise application development.",
		ImageUrl:         "/images/services/java-training.jpg",
	},
	{
		Name:             "Python for Data Science",
		Category:         domain.CategoryTraining,
		ShortDescription: "Learn Python programming with focus on data analysis and machine learning",
		Description:      "This comprehensive Python training program focuses on data science applications. Participants will learn Python syntax, data structures, and libraries like NumPy, Pandas, and Matplotlib. The course progresses to cover data analysis techniques, visualization, and an introduction to machine learning with scikit-learn. By the end of the program, students will be able to implement complete data analysis pipelines using Python.",
		ImageUrl:         "/images/services/python-training.jpg",
	},
	{
		Name:             "MS SQL Database Administration",
		Category:         domain.CategoryTraining,
		ShortDescription: "Master database management and administration with Microsoft SQL Server",
		Description:      "Our MS SQL Database Administration course provides in-depth knowledge of SQL Server installation, configuration, maintenance, and troubleshooting. Participants will learn about database design, query optimization, backup and recovery strategies, and security best practices. The training includes practical exercises on real-world scenarios and prepares students for Microsoft certification exams.",
		ImageUrl:         "/images/services/mssql-training.jpg",
	},
	{
		Name:             "O Level Exam Preparation",
		Category:         domain.CategoryCompetitiveExam,
		ShortDescription: "Specialized coaching for NIELIT O Level computer science examination",
		Description:      "Our O Level Exam Preparation program is specifically designed to help students succeed in the NIELIT (formerly DOEACC) O Level examination. The comprehensive course covers all modules including Information Technology Tools and Network Basics, Web Designing and Publishing, Programming and Problem Solving through Python, and Internet of Things. Our experienced faculty provides targeted guidance, practice tests, and personalized feedback to ensure exam success.",
		ImageUrl:         "/images/services/olevel-coaching.jpg",
	},
	{
		Name:             "Custom Website Development",
		Category:         domain.CategoryDevelopment,
		ShortDescription: "End-to-end website development services for businesses and organizations",
		Description:      "Our Custom Website Development service delivers tailor-made websites that perfectly align with your business goals and brand identity. We handle everything from initial concept and design to development, testing, and deployment. Our development team is proficient in modern web technologies including HTML5, CSS3, JavaScript, React, and various backend frameworks. We focus on creating responsive, user-friendly, and SEO-optimized websites that drive engagement and conversions.",
		ImageUrl:         "/images/services/website-development.jpg",
	},
	{
		Name:             "Educational Software Development",
		Category:         domain.CategoryDevelopment,
		ShortDescription: "Custom educational software solutions for schools and training institutes",
		Description:      "We specialize in developing custom educational software solutions that address the unique challenges faced by educational institutions. Our offerings include student information systems, assessment platforms, virtual learning environments, and administrative tools. Each solution is built with a focus on usability, scalability, and integration capabilities with existing systems. Our development process involves close collaboration with educators to ensure the final product enhances teaching and learning experiences.",
		ImageUrl:         "/images/services/edu-software.jpg",
	},
}
