// Copyright (c) 2025, OpenArc Project.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package webservice

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arc_telemetry_submissions_total",
			Help: "Total number of telemetry session submission attempts",
		},
		[]string{"status"}, // success or error
	)

	submissionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "arc_telemetry_submission_duration_seconds",
			Help:    "Time taken to serialize and submit a telemetry session",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30},
		},
	)

	verificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arc_telemetry_verifications_total",
			Help: "Total number of login verification attempts",
		},
		[]string{"result"}, // verified, rejected, or error
	)
)
