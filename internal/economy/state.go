// Package economy models trade deals, sanctions, supply-chain dependencies,
// and market price multipliers. Effects apply once per turn; deal and
// sanction constructors validate fully before any mutation and never throw.
package economy

import (
	"fmt"

	"github.com/talgya/frostline/internal/world"
)

// Result is the discriminated outcome of a validator-constructor.
type Result struct {
	OK     bool
	Reason string
}

func ok() Result                           { return Result{OK: true} }
func reject(format string, a ...any) Result { return Result{Reason: fmt.Sprintf(format, a...)} }

// DealType selects a trade-deal template.
type DealType string

const (
	DealTradeAgreement DealType = "trade_agreement"
	DealEnergyContract DealType = "energy_contract"
	DealShippingLane   DealType = "shipping_lane"
	DealResearchPact   DealType = "research_pact"
)

// TensionPolicy gates deal creation by the pair's current tension level.
type TensionPolicy string

const (
	PolicyAny                 TensionPolicy = "any"
	PolicyCompetitionOrBetter TensionPolicy = "competition_or_better"
	PolicyCooperationOnly     TensionPolicy = "cooperation_only"
)

// Gain is one side's periodic benefit from an active deal.
type Gain struct {
	Economic  float64 `json:"economic"`
	Influence float64 `json:"influence"`
}

// DealTemplate is the static profile a deal is instantiated from.
type DealTemplate struct {
	Type               DealType
	Name               string
	LegitimacyRequired float64
	InfluenceCost      float64
	Policy             TensionPolicy
	Duration           int // turns; 0 = indefinite
	ProposerGain       Gain
	PartnerGain        Gain
	TensionReduction   float64
}

// energyExporters get the larger economic share of an energy contract
// regardless of which side proposed it.
var energyExporters = map[world.FactionID]bool{
	world.FactionRussia: true,
	world.FactionNorway: true,
}

var dealTemplates = map[DealType]DealTemplate{
	DealTradeAgreement: {
		Type: DealTradeAgreement, Name: "Arctic Trade Agreement",
		LegitimacyRequired: 40, InfluenceCost: 15, Policy: PolicyCompetitionOrBetter,
		ProposerGain: Gain{Economic: 6, Influence: 1},
		PartnerGain:  Gain{Economic: 6, Influence: 1},
		TensionReduction: 3,
	},
	DealEnergyContract: {
		Type: DealEnergyContract, Name: "Long-term Energy Contract",
		LegitimacyRequired: 35, InfluenceCost: 20, Policy: PolicyCompetitionOrBetter,
		Duration: 12,
		// Exporter side gains are swapped in at creation.
		ProposerGain: Gain{Economic: 4},
		PartnerGain:  Gain{Economic: 10, Influence: 2},
		TensionReduction: 2,
	},
	DealShippingLane: {
		Type: DealShippingLane, Name: "Shipping Lane Access",
		LegitimacyRequired: 30, InfluenceCost: 10, Policy: PolicyAny,
		Duration:     8,
		ProposerGain: Gain{Economic: 5, Influence: 2},
		PartnerGain:  Gain{Economic: 3, Influence: 1},
	},
	DealResearchPact: {
		Type: DealResearchPact, Name: "Polar Research Pact",
		LegitimacyRequired: 55, InfluenceCost: 12, Policy: PolicyCooperationOnly,
		ProposerGain: Gain{Influence: 4},
		PartnerGain:  Gain{Influence: 4},
		TensionReduction: 5,
	},
}

// TradeDeal is an active (or deactivated) bilateral deal. Deals are never
// deleted, only deactivated when canceled or expired.
type TradeDeal struct {
	ID        string                   `json:"id"`
	Type      DealType                 `json:"type"`
	Proposer  world.FactionID          `json:"proposer"`
	Partner   world.FactionID          `json:"partner"`
	Gains     map[world.FactionID]Gain `json:"gains"`
	TensionReduction float64           `json:"tension_reduction"`
	TurnsLeft int                      `json:"turns_left"` // -1 = indefinite
	Active    bool                     `json:"active"`
}

// SanctionType selects a sanction template.
type SanctionType string

const (
	SanctionTradeEmbargo    SanctionType = "trade_embargo"
	SanctionTechExportBan   SanctionType = "tech_export_ban"
	SanctionFinancialFreeze SanctionType = "financial_freeze"
)

// SanctionTemplate is the static sanction profile.
type SanctionTemplate struct {
	Type               SanctionType
	Name               string
	LegitimacyRequired float64
	InfluenceCost      float64
	EconomicPenalty    float64 // % of target output per turn
	InfluencePenalty   float64
	LegitimacyPenalty  float64
	BansTrade          bool
}

var sanctionTemplates = map[SanctionType]SanctionTemplate{
	SanctionTradeEmbargo: {
		Type: SanctionTradeEmbargo, Name: "Trade Embargo",
		LegitimacyRequired: 45, InfluenceCost: 25,
		EconomicPenalty: 40, InfluencePenalty: 3, LegitimacyPenalty: 2,
		BansTrade: true,
	},
	SanctionTechExportBan: {
		Type: SanctionTechExportBan, Name: "Technology Export Ban",
		LegitimacyRequired: 40, InfluenceCost: 15,
		EconomicPenalty: 15, InfluencePenalty: 2, LegitimacyPenalty: 1,
		BansTrade: false,
	},
	SanctionFinancialFreeze: {
		Type: SanctionFinancialFreeze, Name: "Financial Asset Freeze",
		LegitimacyRequired: 50, InfluenceCost: 20,
		EconomicPenalty: 25, InfluencePenalty: 5, LegitimacyPenalty: 3,
		BansTrade: true,
	},
}

// WorldReaction classifies international response to a sanction.
type WorldReaction string

const (
	ReactionSupported WorldReaction = "supported"
	ReactionMixed     WorldReaction = "mixed"
	ReactionOpposed   WorldReaction = "opposed"
)

// Sanction is an active (or lifted) multi-imposer, single-target sanction.
type Sanction struct {
	ID                string            `json:"id"`
	Type              SanctionType      `json:"type"`
	Imposers          []world.FactionID `json:"imposers"`
	Target            world.FactionID   `json:"target"`
	EconomicPenalty   float64           `json:"economic_penalty"`
	InfluencePenalty  float64           `json:"influence_penalty"`
	LegitimacyPenalty float64           `json:"legitimacy_penalty"`
	BansTrade         bool              `json:"bans_trade"`
	WorldReaction     WorldReaction     `json:"world_reaction"`
	Active            bool              `json:"active"`
}

// ImposedBy reports whether the faction participates in the sanction.
func (sn *Sanction) ImposedBy(f world.FactionID) bool {
	for _, imp := range sn.Imposers {
		if imp == f {
			return true
		}
	}
	return false
}

// SupplyChainType labels the dependency class.
type SupplyChainType string

const (
	ChainEnergy   SupplyChainType = "energy"
	ChainMinerals SupplyChainType = "minerals"
	ChainShipping SupplyChainType = "shipping"
	ChainFood     SupplyChainType = "food"
)

// SupplyChain converts hostile relations or sanctions between a faction and
// its supplier into automatic economic penalties. Disrupted is recomputed
// every turn.
type SupplyChain struct {
	Faction       world.FactionID `json:"faction"`
	Type          SupplyChainType `json:"type"`
	DependsOn     world.FactionID `json:"depends_on"`
	Vulnerability float64         `json:"vulnerability"`  // 0-100
	EconomicImpact float64        `json:"economic_impact"` // % of output at full vulnerability
	Disrupted     bool            `json:"disrupted"`
}

// MarketPrices are global multipliers around 1.0 applied to zone income.
type MarketPrices struct {
	Oil      float64 `json:"oil"`
	Gas      float64 `json:"gas"`
	Minerals float64 `json:"minerals"`
	Shipping float64 `json:"shipping"`
}

// State is the economic side-car to the world model.
type State struct {
	Deals        []*TradeDeal   `json:"deals"`
	Sanctions    []*Sanction    `json:"sanctions"`
	SupplyChains []*SupplyChain `json:"supply_chains"`
	Prices       MarketPrices   `json:"prices"`

	nextID int
}

// NewState seeds the 2030 economic baseline: neutral prices and the
// structural dependencies the scenario opens with.
func NewState() *State {
	return &State{
		Prices: MarketPrices{Oil: 1, Gas: 1, Minerals: 1, Shipping: 1},
		SupplyChains: []*SupplyChain{
			{Faction: world.FactionEU, Type: ChainEnergy, DependsOn: world.FactionRussia, Vulnerability: 70, EconomicImpact: 15},
			{Faction: world.FactionEU, Type: ChainMinerals, DependsOn: world.FactionChina, Vulnerability: 60, EconomicImpact: 10},
			{Faction: world.FactionUSA, Type: ChainMinerals, DependsOn: world.FactionChina, Vulnerability: 50, EconomicImpact: 10},
			{Faction: world.FactionChina, Type: ChainEnergy, DependsOn: world.FactionRussia, Vulnerability: 40, EconomicImpact: 8},
			{Faction: world.FactionChina, Type: ChainShipping, DependsOn: world.FactionRussia, Vulnerability: 45, EconomicImpact: 8},
			{Faction: world.FactionDenmark, Type: ChainFood, DependsOn: world.FactionEU, Vulnerability: 35, EconomicImpact: 6},
		},
	}
}

// ActiveSanctionBetween returns an active sanction linking the two factions
// in either role, or nil.
func (s *State) ActiveSanctionBetween(a, b world.FactionID) *Sanction {
	for _, sn := range s.Sanctions {
		if !sn.Active {
			continue
		}
		if (sn.Target == a && sn.ImposedBy(b)) || (sn.Target == b && sn.ImposedBy(a)) {
			return sn
		}
	}
	return nil
}

func (s *State) newID(prefix string) string {
	s.nextID++
	return fmt.Sprintf("%s-%d", prefix, s.nextID)
}
