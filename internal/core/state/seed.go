package state

import "github.com/consultantnexus/marketplace-system/internal/core/domain"

// Seed fixtures give a fresh deployment a working marketplace: one admin, two
// business users, three consultants with profiles, a handful of projects in
// assorted statuses, and the matching applications and reviews. They double
// as the fallback when a snapshot cannot be loaded.

func SeedUsers() []domain.User {
	return []domain.User{
		{ID: "admin1", Name: "System Administrator", Role: domain.RoleAdmin, Avatar: "https://picsum.photos/100/100?random=1", Email: "admin@nexus.example"},
		{ID: "biz1", Name: "Marketing Lead", Role: domain.RoleBusiness, Avatar: "https://picsum.photos/100/100?random=2", Email: "marketing@nexus.example"},
		{ID: "biz2", Name: "Engineering Director", Role: domain.RoleBusiness, Avatar: "https://picsum.photos/100/100?random=3", Email: "engineering@nexus.example"},
		{ID: "cons1", Name: "Wei Zhang", Role: domain.RoleConsultant, Avatar: "https://picsum.photos/100/100?random=4", Email: "wei@expert.example"},
		{ID: "cons2", Name: "Na Li", Role: domain.RoleConsultant, Avatar: "https://picsum.photos/100/100?random=5", Email: "na@design.example"},
		{ID: "cons3", Name: "Qiang Wang", Role: domain.RoleConsultant, Avatar: "https://picsum.photos/100/100?random=6", Email: "qiang@data.example"},
	}
}

func SeedProfiles() map[string]domain.ConsultantProfile {
	return map[string]domain.ConsultantProfile{
		"cons1": {
			UserID:         "cons1",
			Title:          "Senior Systems Architect",
			Phone:          "13800138000",
			Skills:         []string{"React", "Node.js", "AWS", "Microservices"},
			PreferredRoles: []string{"Architect", "Technical Advisor"},
			PreferredTasks: []string{"System redesign", "Technology selection"},
			Location:       "Beijing",
			Status:         domain.ConsultantAvailable,
			HourlyRate:     "¥1500",
			Bio:            "Ten years of full-stack and architecture experience, focused on high-concurrency system design.",
		},
		"cons2": {
			UserID:         "cons2",
			Title:          "Senior UI/UX Designer",
			Phone:          "13900139000",
			Skills:         []string{"Figma", "Sketch", "User Research", "Prototyping"},
			PreferredRoles: []string{"Design Lead", "Interaction Designer"},
			PreferredTasks: []string{"App design", "Web redesign"},
			Location:       "Shanghai",
			Status:         domain.ConsultantBusy,
			HourlyRate:     "¥800",
			Bio:            "User-experience specialist who has led design for several products with millions of users.",
		},
		"cons3": {
			UserID:         "cons3",
			Title:          "Data Scientist",
			Phone:          "13700137000",
			Skills:         []string{"Python", "TensorFlow", "SQL", "Data Visualization"},
			PreferredRoles: []string{"Data Analyst", "Algorithm Engineer"},
			PreferredTasks: []string{"Data mining", "BI reporting"},
			Location:       "Shenzhen",
			Status:         domain.ConsultantVacation,
			HourlyRate:     "¥1200",
			Bio:            "Turns large datasets into business value.",
		},
	}
}

func SeedProjects() []domain.Project {
	return []domain.Project{
		{
			ID:             "proj1",
			Title:          "Q4 Campaign Microsite",
			Description:    "Build an interactive microsite for the year-end promotion with social sharing and usage analytics. High-quality visuals and smooth interactions are the priority.",
			Status:         domain.ProjectRecruiting,
			Budget:         "¥50,000",
			Points:         500,
			RequiredSkills: []string{"H5", "React", "Animation"},
			OwnerID:        "biz1",
			StartDate:      "2023-11-01",
			EndDate:        "2023-12-31",
		},
		{
			ID:             "proj2",
			Title:          "Internal CRM Re-architecture",
			Description:    "Split the existing CRM into microservices to improve performance and extensibility. Covers technology selection, architecture design and core module development.",
			Status:         domain.ProjectInProgress,
			Budget:         "¥200,000",
			Points:         2000,
			RequiredSkills: []string{"Java", "Spring Cloud", "MySQL"},
			OwnerID:        "biz2",
			StartDate:      "2023-10-01",
			EndDate:        "2024-03-31",
		},
		{
			ID:             "proj3",
			Title:          "New Product UX Research",
			Description:    "Run user interviews and usability tests for the newly launched SaaS product and deliver a full research report with recommendations.",
			Status:         domain.ProjectCompleted,
			Budget:         "¥30,000",
			Points:         300,
			RequiredSkills: []string{"User Research", "Reporting"},
			OwnerID:        "biz1",
			StartDate:      "2023-09-01",
			EndDate:        "2023-09-30",
		},
	}
}

func SeedApplications() []domain.Application {
	return []domain.Application{
		{ID: "app1", ProjectID: "proj2", ConsultantID: "cons1", BusinessID: "biz2", Status: domain.ApplicationAccepted, Type: domain.TypeApplication, Date: "2023-09-25"},
		{ID: "app2", ProjectID: "proj1", ConsultantID: "cons2", BusinessID: "biz1", Status: domain.ApplicationPending, Type: domain.TypeInvitation, Date: "2023-10-28"},
		{ID: "app3", ProjectID: "proj3", ConsultantID: "cons3", BusinessID: "biz1", Status: domain.ApplicationAccepted, Type: domain.TypeApplication, Date: "2023-08-28"},
	}
}

func SeedReviews() []domain.Review {
	return []domain.Review{
		{ID: "rev1", ProjectID: "proj3", ConsultantID: "cons3", BusinessID: "biz1", Rating: 5, Comment: "Thorough research and a very actionable report. Would work together again.", Date: "2023-10-05"},
	}
}
