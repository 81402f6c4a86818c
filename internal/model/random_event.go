package model

// EventRequirements gate a random event. Nil pointers and empty values are unchecked.
type EventRequirements struct {
	MinStress     *int
	MaxStress     *int
	MinEnergy     *int
	MinMoney      *float64
	MinSkill      *int
	RequiredTrack Track
	MinTier       *int
}

// EventEffects are deltas applied when an event fires.
type EventEffects struct {
	Money       float64
	Stress      float64
	Energy      float64
	Fulfillment float64
	Coding      float64
	Politics    float64
	Corporate   float64
	Freelance   float64
	Reputation  float64
}

// RandomEvent is an immutable entry of the event table.
type RandomEvent struct {
	ID              string
	Title           string
	Message         string
	BaseProbability float64
	Requirements    EventRequirements
	Effects         EventEffects
}
