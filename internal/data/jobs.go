package data

import "github.com/rahidmondal/life-at-dev-sub000/internal/model"

// Crossroad jobs unlock every L2 specialization track.
const (
	CrossroadSeniorDev    = "corp_senior"
	CrossroadDigitalNomad = "hustler_nomad"
)

// VolatileYearlyRent is charged to volatile-income jobs that have no rent rate.
const VolatileYearlyRent = 12000

// DefaultRoleDisplacement is used when a job does not set its own, indexed by tier.
var DefaultRoleDisplacement = [7]float64{0, 0, 0.1, 0.2, 0.4, 0.6, 0.8}

// RoleDisplacementFor returns the job's displacement or the tier default.
func RoleDisplacementFor(job model.JobNode) float64 {
	if job.RoleDisplacement != nil {
		return *job.RoleDisplacement
	}
	tier := min(max(job.Tier, 0), len(DefaultRoleDisplacement)-1)
	return DefaultRoleDisplacement[tier]
}

func builtinJobs() []model.JobNode {
	return []model.JobNode{
		{
			ID:         model.UnemployedJobID,
			Title:      "Unemployed",
			Tier:       0,
			Track:      model.TrackCorporateL1,
			IncomeType: model.IncomeSalary,
			XPCap:      intPtr(0),
		},

		// Corporate_L1
		{
			ID:           "corp_intern",
			Title:        "Software Intern",
			Tier:         0,
			Track:        model.TrackCorporateL1,
			Salary:       20800,
			IncomeType:   model.IncomeSalary,
			XPCap:        intPtr(500),
			Requirements: model.Requirements{Coding: 100},
			RentRate:     0.3,
			EnergyCost:   10,
			WeeklyGains:  model.WeeklyGains{Coding: 12, Corporate: 15, Politics: 2},
		},
		{
			ID:           "corp_junior",
			Title:        "Junior Developer",
			Tier:         1,
			Track:        model.TrackCorporateL1,
			Salary:       41600,
			IncomeType:   model.IncomeSalary,
			XPCap:        intPtr(1500),
			Requirements: model.Requirements{Coding: 800, Corporate: 300},
			RentRate:     0.35,
			EnergyCost:   15,
			WeeklyGains:  model.WeeklyGains{Coding: 15, Corporate: 25, Politics: 5},
		},
		{
			ID:           "corp_mid",
			Title:        "Mid-Level Developer",
			Tier:         2,
			Track:        model.TrackCorporateL1,
			Salary:       72800,
			IncomeType:   model.IncomeSalary,
			XPCap:        intPtr(3500),
			Requirements: model.Requirements{Coding: 2000, Corporate: 1200, Politics: 300},
			RentRate:     0.35,
			EnergyCost:   18,
			WeeklyGains:  model.WeeklyGains{Coding: 18, Corporate: 35, Politics: 8},
		},
		{
			ID:           CrossroadSeniorDev,
			Title:        "Senior Developer",
			Tier:         3,
			Track:        model.TrackCorporateL1,
			Salary:       104000,
			IncomeType:   model.IncomeSalary,
			XPCap:        intPtr(6000),
			Requirements: model.Requirements{Coding: 3500, Corporate: 3000, Politics: 800},
			RentRate:     0.3,
			EnergyCost:   20,
			WeeklyGains:  model.WeeklyGains{Coding: 20, Corporate: 45, Politics: 12},
		},

		// Hustler_L1
		{
			ID:           "hustler_gig",
			Title:        "Gig Coder",
			Tier:         0,
			Track:        model.TrackHustlerL1,
			Salary:       15600,
			IncomeType:   model.IncomeVolatile,
			XPCap:        intPtr(400),
			Requirements: model.Requirements{Coding: 50},
			EnergyCost:   12,
			WeeklyGains:  model.WeeklyGains{Coding: 14, Freelance: 12, Reputation: 3},
		},
		{
			ID:           "hustler_freelancer",
			Title:        "Freelancer",
			Tier:         1,
			Track:        model.TrackHustlerL1,
			Salary:       36400,
			IncomeType:   model.IncomeVolatile,
			XPCap:        intPtr(1500),
			Requirements: model.Requirements{Coding: 600, Freelance: 300},
			EnergyCost:   18,
			WeeklyGains:  model.WeeklyGains{Coding: 16, Freelance: 20, Reputation: 6},
		},
		{
			ID:           CrossroadDigitalNomad,
			Title:        "Digital Nomad",
			Tier:         2,
			Track:        model.TrackHustlerL1,
			Salary:       62400,
			IncomeType:   model.IncomeVolatile,
			XPCap:        intPtr(4000),
			Requirements: model.Requirements{Coding: 1500, Freelance: 1200, Reputation: 500},
			EnergyCost:   20,
			WeeklyGains:  model.WeeklyGains{Coding: 18, Freelance: 28, Reputation: 10},
		},

		// Corp_Management
		{
			ID:               "mgmt_manager",
			Title:            "Engineering Manager",
			Tier:             4,
			Track:            model.TrackCorpManagement,
			Salary:           140000,
			IncomeType:       model.IncomeSalary,
			XPCap:            intPtr(10000),
			Requirements:     model.Requirements{Coding: 3000, Corporate: 5000, Politics: 2500},
			RentRate:         0.25,
			EnergyCost:       25,
			RoleDisplacement: floatPtr(0.6),
			WeeklyGains:      model.WeeklyGains{Politics: 25, Corporate: 60, Reputation: 5},
		},
		{
			ID:               "mgmt_director",
			Title:            "Director of Engineering",
			Tier:             5,
			Track:            model.TrackCorpManagement,
			Salary:           190000,
			IncomeType:       model.IncomeSalary,
			XPCap:            intPtr(16000),
			Requirements:     model.Requirements{Coding: 2500, Corporate: 10000, Politics: 4500},
			RentRate:         0.22,
			EnergyCost:       28,
			RoleDisplacement: floatPtr(0.8),
			WeeklyGains:      model.WeeklyGains{Politics: 35, Corporate: 70, Reputation: 8},
		},
		{
			ID:               "mgmt_vp",
			Title:            "VP of Engineering",
			Tier:             6,
			Track:            model.TrackCorpManagement,
			Salary:           260000,
			IncomeType:       model.IncomeSalary,
			Requirements:     model.Requirements{Coding: 2000, Corporate: 16000, Politics: 7000, Reputation: 2000},
			RentRate:         0.2,
			EnergyCost:       30,
			RoleDisplacement: floatPtr(0.9),
			WeeklyGains:      model.WeeklyGains{Politics: 40, Corporate: 80, Reputation: 10},
		},

		// Corp_IC
		{
			ID:               "ic_staff",
			Title:            "Staff Engineer",
			Tier:             4,
			Track:            model.TrackCorpIC,
			Salary:           150000,
			IncomeType:       model.IncomeSalary,
			XPCap:            intPtr(11000),
			Requirements:     model.Requirements{Coding: 5000, Corporate: 5000, Politics: 1200},
			RentRate:         0.25,
			EnergyCost:       24,
			RoleDisplacement: floatPtr(0.1),
			WeeklyGains:      model.WeeklyGains{Coding: 25, Corporate: 55, Politics: 10},
		},
		{
			ID:               "ic_principal",
			Title:            "Principal Engineer",
			Tier:             5,
			Track:            model.TrackCorpIC,
			Salary:           200000,
			IncomeType:       model.IncomeSalary,
			XPCap:            intPtr(17000),
			Requirements:     model.Requirements{Coding: 6500, Corporate: 11000, Politics: 2000},
			RentRate:         0.22,
			EnergyCost:       26,
			RoleDisplacement: floatPtr(0.15),
			WeeklyGains:      model.WeeklyGains{Coding: 28, Corporate: 65, Politics: 12},
		},
		{
			ID:               "ic_distinguished",
			Title:            "Distinguished Engineer",
			Tier:             6,
			Track:            model.TrackCorpIC,
			Salary:           270000,
			IncomeType:       model.IncomeSalary,
			Requirements:     model.Requirements{Coding: 8000, Corporate: 17000, Politics: 3000, Reputation: 3000},
			RentRate:         0.2,
			EnergyCost:       28,
			RoleDisplacement: floatPtr(0.2),
			WeeklyGains:      model.WeeklyGains{Coding: 30, Corporate: 70, Reputation: 15},
		},

		// Hustler_Business
		{
			ID:           "biz_founder",
			Title:        "Startup Founder",
			Tier:         3,
			Track:        model.TrackHustlerBusiness,
			Salary:       50000,
			IncomeType:   model.IncomeVolatile,
			XPCap:        intPtr(9000),
			Requirements: model.Requirements{Coding: 1500, Freelance: 3000, Reputation: 1500, Politics: 800},
			EnergyCost:   30,
			WeeklyGains:  model.WeeklyGains{Politics: 20, Freelance: 40, Reputation: 25},
		},
		{
			ID:           "biz_ceo",
			Title:        "Scale-up CEO",
			Tier:         4,
			Track:        model.TrackHustlerBusiness,
			Salary:       120000,
			IncomeType:   model.IncomeVolatile,
			XPCap:        intPtr(16000),
			Requirements: model.Requirements{Freelance: 6000, Reputation: 3000, Politics: 2500},
			EnergyCost:   32,
			WeeklyGains:  model.WeeklyGains{Politics: 30, Freelance: 50, Reputation: 30},
		},
		{
			ID:           "biz_mogul",
			Title:        "Tech Mogul",
			Tier:         5,
			Track:        model.TrackHustlerBusiness,
			Salary:       300000,
			IncomeType:   model.IncomeVolatile,
			Requirements: model.Requirements{Freelance: 10000, Reputation: 6000, Politics: 4000},
			EnergyCost:   35,
			WeeklyGains:  model.WeeklyGains{Politics: 35, Freelance: 60, Reputation: 35},
		},

		// Hustler_Specialist
		{
			ID:           "spec_consultant",
			Title:        "Independent Consultant",
			Tier:         3,
			Track:        model.TrackHustlerSpecialist,
			Salary:       90000,
			IncomeType:   model.IncomeVolatile,
			XPCap:        intPtr(9000),
			Requirements: model.Requirements{Coding: 4000, Freelance: 2500, Reputation: 1000},
			EnergyCost:   24,
			WeeklyGains:  model.WeeklyGains{Coding: 24, Freelance: 40, Reputation: 18},
		},
		{
			ID:           "spec_expert",
			Title:        "Industry Expert",
			Tier:         4,
			Track:        model.TrackHustlerSpecialist,
			Salary:       150000,
			IncomeType:   model.IncomeVolatile,
			XPCap:        intPtr(15000),
			Requirements: model.Requirements{Coding: 6000, Freelance: 5500, Reputation: 3500},
			EnergyCost:   26,
			WeeklyGains:  model.WeeklyGains{Coding: 26, Freelance: 50, Reputation: 25},
		},
		{
			ID:           "spec_legend",
			Title:        "Open Source Legend",
			Tier:         5,
			Track:        model.TrackHustlerSpecialist,
			Salary:       220000,
			IncomeType:   model.IncomeVolatile,
			Requirements: model.Requirements{Coding: 8000, Freelance: 9000, Reputation: 6000},
			EnergyCost:   28,
			WeeklyGains:  model.WeeklyGains{Coding: 28, Freelance: 55, Reputation: 30},
		},
	}
}
