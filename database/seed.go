package database

import (
	"strconv"
	"time"

	"projectvault/models"
)

// seedEpoch anchors fixture creation times; entry n was created n hours after it.
var seedEpoch = time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)

type seedProject struct {
	title, lead, abstract, category, linkedin string
}

var seedProjects = []seedProject{
	{
		title:    "CAR BLACKBOX",
		lead:     "Arya A. Mhatre",
		abstract: "This project aims to develop an advanced vehicle black box system that records critical data during a drive, enhancing safety and accident analysis.",
		category: "Embedded Systems/Automotive Technology",
		linkedin: "https://www.linkedin.com/in/arya-mhatre",
	},
	{
		title:    "BIONIC ARM",
		lead:     "Yash Shinde",
		abstract: "The Bionic Arm project focuses on creating a prosthetic arm that mimics natural movement using sensors and actuators, providing enhanced functionality for users.",
		category: "Robotics/Artificial Intelligence",
		linkedin: "https://www.linkedin.com/in/yash-shinde",
	},
	{
		title:    "SIGN LANGUAGE RECOGNITION USING MEDIAPIPE FRAMEWORK WITH PYTHON",
		lead:     "Faisal Hussain",
		abstract: "This project utilizes the MediaPipe framework and Python to develop a system capable of recognizing and translating sign language into text, promoting accessibility for the hearing impaired.",
		category: "Artificial Intelligence/Computer Vision",
		linkedin: "https://www.linkedin.com/in/faisal-hussain",
	},
	{
		title:    "Home Automation Using Node MCU",
		lead:     "Vijay Chavan",
		abstract: "The Home Automation project leverages Node MCU technology to create a smart home system, allowing users to control household appliances remotely via a web interface.",
		category: "IoT (Internet of Things)",
		linkedin: "https://www.linkedin.com/in/vijay-chavan",
	},
	{
		title:    "Personal Virtual Desktop Assistant with Personal Chatbot Using Python (ZIRA)",
		lead:     "Sohel Sarang",
		abstract: "ZIRA is designed as a personal virtual assistant that interacts with users through natural language processing, providing assistance with tasks and information retrieval.",
		category: "Artificial Intelligence/Chatbot Development",
		linkedin: "https://www.linkedin.com/in/sohel-sarang",
	},
	{
		title:    "Face Recognition Based Smart Attendance System",
		lead:     "Prateek Rasalkar",
		abstract: "This project develops a smart attendance system using face recognition technology to automate and streamline attendance tracking in educational institutions.",
		category: "Artificial Intelligence/Computer Vision",
		linkedin: "https://www.linkedin.com/in/prateek-rasalkar",
	},
	{
		title:    "VOICE CONTROLLED HUMANOID",
		lead:     "Chaitanya Rane",
		abstract: "This project focuses on creating a humanoid robot that can be controlled using voice commands, enhancing human-robot interaction.",
		category: "Robotics/Artificial Intelligence",
		linkedin: "https://www.linkedin.com/in/chaitanya-rane",
	},
	{
		title:    "TROJAN HORSE DETECTION SOFTWARE",
		lead:     "Anusha Charvekar",
		abstract: "The project aims to develop software capable of detecting Trojan horse malware, enhancing cybersecurity measures for users.",
		category: "Cybersecurity",
		linkedin: "https://www.linkedin.com/in/anusha-charvekar",
	},
	{
		title:    "Milk Quality Detection",
		lead:     "Om Kasar",
		abstract: "This mini-project focuses on developing a system to assess the quality of milk using various detection methods.",
		category: "Food Technology",
		linkedin: "https://www.linkedin.com/in/om-kasar",
	},
	{
		title:    "House Price Prediction",
		lead:     "Vishesh Sharma",
		abstract: "The project utilizes machine learning algorithms to predict house prices based on various features and market trends.",
		category: "Data Science/Machine Learning",
		linkedin: "https://www.linkedin.com/in/vishesh-sharma",
	},
	{
		title:    "IoT-Based Air Pollution Management System",
		lead:     "Aabha Kadam",
		abstract: "This project aims to create an IoT-based system for monitoring and managing air pollution levels in urban areas.",
		category: "IoT (Internet of Things)",
		linkedin: "https://www.linkedin.com/in/aabha-kadam",
	},
	{
		title:    "Comparative Analysis of Deep Learning Algorithms for Satellite Image Segmentation",
		lead:     "Soumya Ramkrishna",
		abstract: "The project involves analyzing various deep learning algorithms to determine their effectiveness in segmenting satellite images.",
		category: "Artificial Intelligence/Deep Learning",
		linkedin: "https://www.linkedin.com/in/soumya-ramkrishna",
	},
	{
		title:    "Smart Plant Watering System",
		lead:     "Simran Kodere",
		abstract: "This mini-project develops an automated plant watering system that uses sensors to determine soil moisture levels.",
		category: "IoT (Internet of Things)",
		linkedin: "https://www.linkedin.com/in/simran-kodere",
	},
	{
		title:    "Anti Theft Alert System",
		lead:     "Shubham Wankhede",
		abstract: "The project focuses on creating an anti-theft alert system that uses sensors and alarms to protect valuable assets.",
		category: "Security Systems",
		linkedin: "https://www.linkedin.com/in/shubham-wankhede",
	},
	{
		title:    "Online Language Translator for PDF",
		lead:     "Sanket Mishra",
		abstract: "This mini-project aims to develop an online tool that translates text in PDF documents into multiple languages.",
		category: "Software Development/Translation Technology",
		linkedin: "https://www.linkedin.com/in/sanket-mishra",
	},
	{
		title:    "ALLOCATRIX - Active Allocation in Derivative Matrix",
		lead:     "Gaurav Bhadoria",
		abstract: "This project focuses on optimizing resource allocation in derivative matrices for improved operational efficiency.",
		category: "Mathematics/Optimization",
		linkedin: "https://www.linkedin.com/in/gaurav-bhadoria",
	},
	{
		title:    "DATA EXTRACTION USING RPA FROM UNSTRUCTURED DATA",
		lead:     "Sakshi Sawant",
		abstract: "Developing a Robotic Process Automation (RPA) solution for extracting valuable insights from unstructured data sources.",
		category: "Data Science/RPA",
		linkedin: "https://www.linkedin.com/in/sakshi-sawant",
	},
	{
		title:    "SAGA - Gauging Seconds",
		lead:     "Smruti Yadav",
		abstract: "A time management tool designed to enhance productivity by tracking and analyzing time spent on various tasks.",
		category: "Productivity Tools",
		linkedin: "https://www.linkedin.com/in/smruti-yadav",
	},
	{
		title:    "CAR CRASH DETECTION AND ASSISTANCE",
		lead:     "Sahil Sharma",
		abstract: "This system detects car crashes in real-time and provides immediate assistance through alerts and notifications.",
		category: "Automotive Safety",
		linkedin: "https://www.linkedin.com/in/sahil-sharma",
	},
	{
		title:    "VEHICARE",
		lead:     "Shantanu Tembhurne",
		abstract: "An application designed for vehicle maintenance tracking and reminders, enhancing vehicle longevity.",
		category: "Mobile App Development",
		linkedin: "https://www.linkedin.com/in/shantanu-tembhurne",
	},
}

// SeedProjects returns the showcase catalog. IDs are "1" through "20" in
// creation order, so newest-first listings start at "20".
func SeedProjects() []models.Project {
	projects := make([]models.Project, 0, len(seedProjects))
	for i, s := range seedProjects {
		linkedin := s.linkedin
		created := seedEpoch.Add(time.Duration(i+1) * time.Hour)
		projects = append(projects, models.Project{
			ID:           strconv.Itoa(i + 1),
			Title:        s.title,
			ProjectLead:  s.lead,
			Year:         2024,
			Category:     s.category,
			Abstract:     s.abstract,
			Technologies: []string{},
			LinkedinURL:  &linkedin,
			CreatedAt:    created,
			UpdatedAt:    created,
		})
	}
	return projects
}
