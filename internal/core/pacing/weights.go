package pacing

import "adpacing/internal/core/domain"

// Relative spend weight per hour of day. Curves follow Korean search traffic:
// quiet overnight, a morning ramp from 07h and an evening peak around 21h.
var (
	standardWeights = domain.HourlyAllocation{
		0.6, 0.4, 0.3, 0.2, 0.2, 0.3, // 00-05
		0.5, 0.8, 1.0, 1.2, 1.3, 1.3, // 06-11
		1.2, 1.2, 1.3, 1.3, 1.2, 1.1, // 12-17
		1.0, 1.1, 1.2, 1.3, 1.1, 0.8, // 18-23
	}
	acceleratedWeights = domain.HourlyAllocation{
		1.0, 0.8, 0.6, 0.5, 0.5, 0.7,
		1.0, 1.4, 1.6, 1.8, 1.8, 1.7,
		1.6, 1.5, 1.5, 1.4, 1.3, 1.2,
		1.0, 1.0, 0.9, 0.9, 0.7, 0.5,
	}
	frontLoadedWeights = domain.HourlyAllocation{
		0.8, 0.6, 0.4, 0.3, 0.3, 0.5,
		0.9, 1.4, 1.8, 2.0, 2.0, 1.8,
		1.6, 1.4, 1.2, 1.1, 1.0, 0.9,
		0.8, 0.7, 0.6, 0.5, 0.4, 0.3,
	}
	backLoadedWeights = domain.HourlyAllocation{
		0.3, 0.2, 0.2, 0.2, 0.2, 0.2,
		0.3, 0.4, 0.6, 0.7, 0.8, 0.9,
		1.0, 1.0, 1.1, 1.2, 1.3, 1.4,
		1.6, 1.8, 2.0, 2.0, 1.8, 1.2,
	}
)
