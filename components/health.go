package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current float64
	Max     float64
}

// Ratio is the remaining health in [0, 1].
func (h *HealthData) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	r := h.Current / h.Max
	if r < 0 {
		return 0
	}
	return r
}

var Health = donburi.NewComponentType[HealthData]()
