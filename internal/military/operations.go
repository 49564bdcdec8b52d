package military

// OperationType names a military action template with a fixed risk/cost
// profile.
type OperationType string

const (
	OpPatrol       OperationType = "patrol"
	OpBlockade     OperationType = "blockade"
	OpStrike       OperationType = "strike"
	OpInvasion     OperationType = "invasion"
	OpDefense      OperationType = "defense"
	OpIntercept    OperationType = "intercept"
	OpEvacuation   OperationType = "evacuation"
	OpNuclearAlert OperationType = "nuclear_alert"
)

// OperationSpec is the immutable profile of an operation.
type OperationSpec struct {
	Type          OperationType
	Name          string
	BaseTension   float64 // tension cost applied on resolution
	InfluenceCost float64
	RiskLevel     float64 // 0-100, advisory for AI gating
	MinUnits      int
}

var operationSpecs = map[OperationType]OperationSpec{
	OpPatrol:       {Type: OpPatrol, Name: "Patrol", BaseTension: 3, InfluenceCost: 5, RiskLevel: 10, MinUnits: 1},
	OpBlockade:     {Type: OpBlockade, Name: "Blockade", BaseTension: 25, InfluenceCost: 15, RiskLevel: 50, MinUnits: 2},
	OpStrike:       {Type: OpStrike, Name: "Precision Strike", BaseTension: 40, InfluenceCost: 25, RiskLevel: 70, MinUnits: 1},
	OpInvasion:     {Type: OpInvasion, Name: "Invasion", BaseTension: 60, InfluenceCost: 40, RiskLevel: 90, MinUnits: 3},
	OpDefense:      {Type: OpDefense, Name: "Defensive Stand", BaseTension: 5, InfluenceCost: 5, RiskLevel: 20, MinUnits: 1},
	OpIntercept:    {Type: OpIntercept, Name: "Intercept", BaseTension: 15, InfluenceCost: 10, RiskLevel: 40, MinUnits: 1},
	OpEvacuation:   {Type: OpEvacuation, Name: "Evacuation", BaseTension: 2, InfluenceCost: 5, RiskLevel: 15, MinUnits: 1},
	OpNuclearAlert: {Type: OpNuclearAlert, Name: "Nuclear Alert", BaseTension: 80, InfluenceCost: 50, RiskLevel: 100, MinUnits: 0},
}

// OpSpecFor returns the operation profile; unknown types get a zero value.
func OpSpecFor(t OperationType) OperationSpec {
	return operationSpecs[t]
}

// WorldReaction classifies how the international community responds to a
// resolved operation.
type WorldReaction string

const (
	ReactionIgnored      WorldReaction = "ignored"
	ReactionCondemned    WorldReaction = "condemned"
	ReactionSanctions    WorldReaction = "sanctions"
	ReactionIntervention WorldReaction = "intervention"
)
