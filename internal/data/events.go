package data

import "github.com/rahidmondal/life-at-dev-sub000/internal/model"

// Notification event ids posted by the event engine outside the random table.
const (
	EventPromotionReady = "promotion_ready"
	EventCrossroads     = "crossroads"
)

// builtinEvents is ordered: the first eligible event whose roll succeeds fires.
func builtinEvents() []model.RandomEvent {
	return []model.RandomEvent{
		{
			ID:              "panic_attack",
			Title:           "Panic attack",
			Message:         "Your body forces you to stop. You lose the rest of the week to recovery.",
			BaseProbability: 0.25,
			Requirements:    model.EventRequirements{MinStress: intPtr(85)},
			Effects:         model.EventEffects{Energy: -30, Stress: -10, Fulfillment: -100},
		},
		{
			ID:              "layoff_rumors",
			Title:           "Layoff rumors",
			Message:         "Whispers of a reorg spread through the office.",
			BaseProbability: 0.04,
			Requirements:    model.EventRequirements{RequiredTrack: model.TrackCorporateL1, MinTier: intPtr(1)},
			Effects:         model.EventEffects{Stress: 10, Politics: 20},
		},
		{
			ID:              "viral_post",
			Title:           "Viral post",
			Message:         "Something you wrote blew up overnight.",
			BaseProbability: 0.03,
			Requirements:    model.EventRequirements{MinSkill: intPtr(1500)},
			Effects:         model.EventEffects{Reputation: 300, Fulfillment: 150},
		},
		{
			ID:              "client_ghosted",
			Title:           "Client ghosted you",
			Message:         "A client vanished without paying the final invoice.",
			BaseProbability: 0.05,
			Requirements:    model.EventRequirements{RequiredTrack: model.TrackHustlerL1, MinMoney: floatPtr(500)},
			Effects:         model.EventEffects{Money: -500, Stress: 8},
		},
		{
			ID:              "mentor_offer",
			Title:           "A mentor reaches out",
			Message:         "A senior engineer offers to review your code every week.",
			BaseProbability: 0.03,
			Requirements:    model.EventRequirements{MaxStress: intPtr(60), MinEnergy: intPtr(30)},
			Effects:         model.EventEffects{Coding: 150, Politics: 50},
		},
		{
			ID:              "conference_invite",
			Title:           "Conference invitation",
			Message:         "You were invited to speak at a regional conference.",
			BaseProbability: 0.02,
			Requirements:    model.EventRequirements{MinSkill: intPtr(4000), MinTier: intPtr(3)},
			Effects:         model.EventEffects{Reputation: 400, Corporate: 100, Freelance: 100, Stress: 5},
		},
		{
			ID:              "laptop_died",
			Title:           "Laptop died",
			Message:         "Your laptop refuses to boot. A replacement is not optional.",
			BaseProbability: 0.02,
			Requirements:    model.EventRequirements{MinMoney: floatPtr(1200)},
			Effects:         model.EventEffects{Money: -1200, Stress: 6},
		},
		{
			ID:              "hackathon_win",
			Title:           "Hackathon win",
			Message:         "Your weekend hack took first place.",
			BaseProbability: 0.02,
			Requirements:    model.EventRequirements{MinSkill: intPtr(2500), MinEnergy: intPtr(50)},
			Effects:         model.EventEffects{Money: 2000, Reputation: 150, Fulfillment: 200},
		},
		{
			ID:              "good_week",
			Title:           "A good week",
			Message:         "Everything clicked this week.",
			BaseProbability: 0.05,
			Requirements:    model.EventRequirements{MaxStress: intPtr(40)},
			Effects:         model.EventEffects{Stress: -5, Energy: 10, Fulfillment: 80},
		},
	}
}
