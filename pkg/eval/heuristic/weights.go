package eval

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Weights are the tunable parameters of the evaluator.
// Every Decay field is clamped to [-1, 1] and bends its feature weight
// toward zero (negative) or up to double (positive) as pieces come off the board.
type Weights struct {
	ManWeight     float64 `json:"man_weight"`
	KingWeight    float64 `json:"king_weight"`
	MaterialDecay float64 `json:"material_decay"`

	BackRowWeight float64 `json:"back_row_weight"`
	BackRowDecay  float64 `json:"back_row_decay"`

	CaptureWeight    float64 `json:"capture_weight"`
	PromotionBonus   float64 `json:"promotion_bonus"`
	EdgeBonus        float64 `json:"edge_bonus"`
	KingCaptureBonus float64 `json:"king_capture_bonus"`
	CaptureDecay     float64 `json:"capture_decay"`

	MobilityWeight     float64 `json:"mobility_weight"`
	JumpMobilityWeight float64 `json:"jump_mobility_weight"`
	MobilityDecay      float64 `json:"mobility_decay"`

	SafetyWeight float64 `json:"safety_weight"`
	SafetyDecay  float64 `json:"safety_decay"`

	TurnWeight float64 `json:"turn_weight"`
	TurnDecay  float64 `json:"turn_decay"`

	VergeWeight float64 `json:"verge_weight"`
	VergeDecay  float64 `json:"verge_decay"`

	CenterWeight  float64 `json:"center_weight"`
	EdgeWeight    float64 `json:"edge_weight"`
	CenterDecay   float64 `json:"center_decay"`
	OpeningPieces int     `json:"opening_pieces"`

	PromotionDistanceWeight float64 `json:"promotion_distance_weight"`
	PromotionDistanceDecay  float64 `json:"promotion_distance_decay"`
	MidgamePieces           int     `json:"midgame_pieces"`

	ChaseWeight        float64 `json:"chase_weight"`
	DoubleCornerWeight float64 `json:"double_corner_weight"`
	ChaseDecay         float64 `json:"chase_decay"`
	EndgamePieces      int     `json:"endgame_pieces"`
}

func DefaultWeights() Weights {
	return Weights{
		ManWeight:     100,
		KingWeight:    160,
		MaterialDecay: 0.25,

		BackRowWeight: 6,
		BackRowDecay:  -1,

		CaptureWeight:    12,
		PromotionBonus:   0.5,
		EdgeBonus:        0.1,
		KingCaptureBonus: 0.5,
		CaptureDecay:     0,

		MobilityWeight:     2,
		JumpMobilityWeight: 2,
		MobilityDecay:      0.5,

		SafetyWeight: 3,
		SafetyDecay:  -0.5,

		TurnWeight: 8,
		TurnDecay:  0,

		VergeWeight: 20,
		VergeDecay:  0.5,

		CenterWeight:  4,
		EdgeWeight:    -2,
		CenterDecay:   0,
		OpeningPieces: 16,

		PromotionDistanceWeight: 2,
		PromotionDistanceDecay:  0.5,
		MidgamePieces:           18,

		ChaseWeight:        1.5,
		DoubleCornerWeight: 15,
		ChaseDecay:         0,
		EndgamePieces:      8,
	}
}

// LoadWeights reads weights written by Save. Fields missing from the file keep their default values.
func LoadWeights(path string) (Weights, error) {
	var data, err = os.ReadFile(path)
	if err != nil {
		return Weights{}, err
	}
	var w = DefaultWeights()
	var dec = json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&w); err != nil {
		return Weights{}, fmt.Errorf("load weights %v: %w", path, err)
	}
	return w, nil
}

func (w Weights) Save(path string) error {
	var data, err = json.MarshalIndent(w, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// adjustment scales a weight by the game phase: 1 at the start, 1+decay with an empty board.
func adjustment(total int, decay float64) float64 {
	if decay < -1 {
		decay = -1
	} else if decay > 1 {
		decay = 1
	}
	if total < 0 {
		total = 0
	} else if total > totalPieces {
		total = totalPieces
	}
	var x = float64(totalPieces-total) / totalPieces
	return 1 + decay*x*x
}
