// Package actions holds the static catalog of player/AI actions and the
// executor that applies their costs and effects to the world state.
package actions

// Category groups actions for availability display and military handling.
type Category string

const (
	Diplomatic Category = "diplomatic"
	Economic   Category = "economic"
	Military   Category = "military"
	Covert     Category = "covert"
)

// ActionID identifies a catalog action.
type ActionID string

const (
	BilateralSummit      ActionID = "bilateral_summit"
	ArcticCouncilMotion  ActionID = "arctic_council_motion"
	ScienceMission       ActionID = "science_mission"
	ClaimZone            ActionID = "claim_zone"
	InfrastructureInvest ActionID = "infrastructure_investment"
	ResourceExtraction   ActionID = "resource_extraction"
	ShippingExpansion    ActionID = "shipping_expansion"
	MilitaryExercise     ActionID = "military_exercise"
	DeployForces         ActionID = "deploy_forces"
	IcebreakerPatrol     ActionID = "icebreaker_patrol"
	CyberOperation       ActionID = "cyber_operation"
	Disinformation       ActionID = "disinformation_campaign"
	CovertSurveillance   ActionID = "covert_surveillance"
)

// Cost is deducted unconditionally by Execute; callers must pre-filter
// through Available.
type Cost struct {
	Influence      float64
	EconomicOutput float64
}

// Requirements gate availability only, never execution.
type Requirements struct {
	MinLegitimacy   float64
	ControlsAnyZone bool
}

// Effects are resource deltas plus an optional tension delta that applies
// only when a target faction is supplied.
type Effects struct {
	Influence         float64
	EconomicOutput    float64
	Legitimacy        float64
	MilitaryReadiness float64
	TensionDelta      float64
}

// Action is one immutable catalog row.
type Action struct {
	ID           ActionID
	Name         string
	Category     Category
	Cost         Cost
	Requirements Requirements
	Effects      Effects
}

// Catalog is the full static action table.
var Catalog = []Action{
	{
		ID: BilateralSummit, Name: "Bilateral Summit", Category: Diplomatic,
		Cost:    Cost{Influence: 15},
		Effects: Effects{Legitimacy: 3, TensionDelta: -15},
	},
	{
		ID: ArcticCouncilMotion, Name: "Arctic Council Motion", Category: Diplomatic,
		Cost:         Cost{Influence: 20},
		Requirements: Requirements{MinLegitimacy: 40},
		Effects:      Effects{Influence: 5, Legitimacy: 6},
	},
	{
		ID: ScienceMission, Name: "Polar Science Mission", Category: Diplomatic,
		Cost:    Cost{Influence: 10, EconomicOutput: 10},
		Effects: Effects{Legitimacy: 4, TensionDelta: -5},
	},
	{
		ID: ClaimZone, Name: "File Territorial Claim", Category: Diplomatic,
		Cost:         Cost{Influence: 30},
		Requirements: Requirements{MinLegitimacy: 50},
		Effects:      Effects{Legitimacy: -2, TensionDelta: 10},
	},
	{
		ID: InfrastructureInvest, Name: "Arctic Infrastructure Investment", Category: Economic,
		Cost:    Cost{EconomicOutput: 25},
		Effects: Effects{EconomicOutput: 8, Influence: 4, Legitimacy: 2},
	},
	{
		ID: ResourceExtraction, Name: "Expand Resource Extraction", Category: Economic,
		Cost:         Cost{EconomicOutput: 20},
		Requirements: Requirements{ControlsAnyZone: true},
		Effects:      Effects{EconomicOutput: 12, Legitimacy: -3},
	},
	{
		ID: ShippingExpansion, Name: "Shipping Lane Expansion", Category: Economic,
		Cost:         Cost{Influence: 10, EconomicOutput: 15},
		Requirements: Requirements{ControlsAnyZone: true},
		Effects:      Effects{EconomicOutput: 10, Influence: 3},
	},
	{
		ID: MilitaryExercise, Name: "Joint Military Exercise", Category: Military,
		Cost:    Cost{EconomicOutput: 15},
		Effects: Effects{MilitaryReadiness: 10, TensionDelta: 12},
	},
	{
		ID: DeployForces, Name: "Forward Deployment", Category: Military,
		Cost:         Cost{Influence: 10, EconomicOutput: 10},
		Requirements: Requirements{MinLegitimacy: 30},
		Effects:      Effects{MilitaryReadiness: 5, TensionDelta: 15},
	},
	{
		ID: IcebreakerPatrol, Name: "Icebreaker Patrol", Category: Military,
		Cost:    Cost{EconomicOutput: 8},
		Effects: Effects{Influence: 3, TensionDelta: 5},
	},
	{
		ID: CyberOperation, Name: "Cyber Operation", Category: Covert,
		Cost:    Cost{Influence: 20},
		Effects: Effects{EconomicOutput: 5, Legitimacy: -4, TensionDelta: 18},
	},
	{
		ID: Disinformation, Name: "Disinformation Campaign", Category: Covert,
		Cost:    Cost{Influence: 15},
		Effects: Effects{Influence: 8, Legitimacy: -5, TensionDelta: 10},
	},
	{
		ID: CovertSurveillance, Name: "Covert Surveillance", Category: Covert,
		Cost:    Cost{Influence: 12},
		Effects: Effects{Influence: 4, TensionDelta: 6},
	},
}

// ByID returns the catalog action, or nil for unknown ids.
func ByID(id ActionID) *Action {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i]
		}
	}
	return nil
}
