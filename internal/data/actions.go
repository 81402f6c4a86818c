package data

import "github.com/rahidmondal/life-at-dev-sub000/internal/model"

var (
	corporateJobs = []string{
		"corp_intern", "corp_junior", "corp_mid", CrossroadSeniorDev,
		"mgmt_manager", "mgmt_director", "mgmt_vp",
		"ic_staff", "ic_principal", "ic_distinguished",
	}
	hustlerJobs = []string{
		"hustler_gig", "hustler_freelancer", CrossroadDigitalNomad,
		"biz_founder", "biz_ceo", "biz_mogul",
		"spec_consultant", "spec_expert", "spec_legend",
	}
)

func builtinActions() []model.GameAction {
	return []model.GameAction{
		// SKILL
		{
			ID:         "study_algorithms",
			Title:      "Study algorithms",
			Category:   model.CategorySkill,
			EnergyCost: 20,
			Rewards:    model.Rewards{Skill: 40, Stress: 5},
			Duration:   1,
		},
		{
			ID:         "online_course",
			Title:      "Take an online course",
			Category:   model.CategorySkill,
			EnergyCost: 15,
			MoneyCost:  200,
			Rewards:    model.Rewards{Skill: 60, Stress: 3},
			Duration:   1,
		},
		{
			ID:         "side_project",
			Title:      "Build a side project",
			Category:   model.CategorySkill,
			EnergyCost: 30,
			Rewards:    model.Rewards{Skill: 80, Reputation: 20, Freelance: 10, Stress: 8, Fulfillment: 50},
			Duration:   2,
		},
		{
			ID:           "leetcode_grind",
			Title:        "Grind interview problems",
			Category:     model.CategorySkill,
			EnergyCost:   25,
			Rewards:      model.Rewards{Skill: 50, Stress: 10},
			Requirements: model.Requirements{Coding: 500},
			Duration:     1,
		},

		// WORK
		{
			ID:              "work_overtime",
			Title:           "Work overtime",
			Category:        model.CategoryWork,
			EnergyCost:      35,
			Rewards:         model.Rewards{Corporate: 60, Politics: 10, Money: 400, Stress: 12},
			Duration:        1,
			JobRequirements: corporateJobs,
		},
		{
			ID:              "ship_feature",
			Title:           "Ship a visible feature",
			Category:        model.CategoryWork,
			EnergyCost:      25,
			Rewards:         model.Rewards{Skill: 20, Corporate: 40, Reputation: 5, Stress: 6},
			Duration:        1,
			JobRequirements: corporateJobs,
		},
		{
			ID:              "freelance_gig",
			Title:           "Take a freelance gig",
			Category:        model.CategoryWork,
			EnergyCost:      30,
			Rewards:         model.Rewards{Freelance: 50, Reputation: 10, Money: 800, Stress: 10},
			Duration:        1,
			JobRequirements: hustlerJobs,
		},
		{
			ID:         "odd_jobs",
			Title:      "Do odd jobs",
			Category:   model.CategoryWork,
			EnergyCost: 25,
			Rewards:    model.Rewards{Money: 300, Stress: 6},
			Duration:   1,
		},

		// NETWORK
		{
			ID:         "attend_meetup",
			Title:      "Attend a meetup",
			Category:   model.CategoryNetwork,
			EnergyCost: 15,
			MoneyCost:  50,
			Rewards:    model.Rewards{Politics: 30, Reputation: 15},
		},
		{
			ID:              "office_politics",
			Title:           "Play office politics",
			Category:        model.CategoryNetwork,
			EnergyCost:      10,
			Rewards:         model.Rewards{Politics: 40, Corporate: 10, Stress: 5},
			JobRequirements: corporateJobs,
		},
		{
			ID:         "post_content",
			Title:      "Post technical content",
			Category:   model.CategoryNetwork,
			EnergyCost: 10,
			Rewards:    model.Rewards{Reputation: 25},
		},

		// RECOVER
		{
			ID:         "rest",
			Title:      "Rest",
			Category:   model.CategoryRecover,
			Rewards:    model.Rewards{Stress: -15},
			Duration:   1,
			EnergyGain: 40,
		},
		{
			ID:            "vacation",
			Title:         "Go on vacation",
			Category:      model.CategoryRecover,
			MoneyCost:     1500,
			Rewards:       model.Rewards{Stress: -40, Fulfillment: 200},
			Duration:      2,
			EnergyGain:    100,
			CooldownWeeks: 12,
		},
		{
			ID:        "therapy",
			Title:     "See a therapist",
			Category:  model.CategoryRecover,
			MoneyCost: 300,
			Rewards:   model.Rewards{Stress: -25, Fulfillment: 100},
		},
		{
			ID:         "hobby",
			Title:      "Spend time on a hobby",
			Category:   model.CategoryRecover,
			EnergyCost: 5,
			Rewards:    model.Rewards{Stress: -10, Fulfillment: 150},
			Duration:   1,
			EnergyGain: 10,
		},

		// INVEST
		{
			ID:        "ergonomic_chair",
			Title:     "Buy an ergonomic chair",
			Category:  model.CategoryInvest,
			MoneyCost: 800,
			PassiveBuff: &model.PassiveBuff{
				Stat: model.BuffStress, Type: model.BuffMultiplier, Value: 0.85,
				Description: "Stress gains reduced by 15%",
			},
		},
		{
			ID:        "mech_keyboard",
			Title:     "Buy a mechanical keyboard",
			Category:  model.CategoryInvest,
			MoneyCost: 300,
			PassiveBuff: &model.PassiveBuff{
				Stat: model.BuffCoding, Type: model.BuffMultiplier, Value: 1.1,
				Description: "Coding gains increased by 10%",
			},
		},
		{
			ID:        "standing_desk",
			Title:     "Buy a standing desk",
			Category:  model.CategoryInvest,
			MoneyCost: 600,
			PassiveBuff: &model.PassiveBuff{
				Stat: model.BuffRecovery, Type: model.BuffFlat, Value: 5,
				Description: "+5 energy whenever you recover",
			},
		},
		{
			ID:          "gym_membership",
			Title:       "Join a gym",
			Category:    model.CategoryInvest,
			MoneyCost:   100,
			IsRecurring: true,
			PassiveBuff: &model.PassiveBuff{
				Stat: model.BuffEnergy, Type: model.BuffFlat, Value: 5,
				Description: "+5 energy per week", WeeklyCost: 15,
			},
		},
		{
			ID:          "career_coach",
			Title:       "Hire a career coach",
			Category:    model.CategoryInvest,
			MoneyCost:   200,
			IsRecurring: true,
			PassiveBuff: &model.PassiveBuff{
				Stat: model.BuffPolitics, Type: model.BuffMultiplier, Value: 1.2,
				Description: "Politics gains increased by 20%", WeeklyCost: 40,
			},
		},
		{
			ID:          "mentorship_circle",
			Title:       "Join a mentorship circle",
			Category:    model.CategoryInvest,
			MoneyCost:   50,
			IsRecurring: true,
			PassiveBuff: &model.PassiveBuff{
				Stat: model.BuffReputation, Type: model.BuffFlat, Value: 3,
				Description: "+3 reputation on every reputation gain", WeeklyCost: 10,
			},
		},
	}
}
