package stress

import (
	"fmt"
	"strings"
)

// Metrics carries the four indicators of one dataset row with absent values
// already coerced to zero. The coercion happens at the caller so the
// templaters stay pure functions of plain floats.
type Metrics struct {
	RiskScore       float64
	BioRatio        float64
	ChildPressure   float64
	ElderlyPressure float64
}

type recommendation struct {
	priority    string
	title       string
	description string
}

// recommendationRule pairs a threshold band with the prose block it emits.
// Rules are evaluated in order; bands of the same field are exclusive.
type recommendationRule struct {
	applies func(Metrics) bool
	build   func(Metrics) recommendation
}

// indicatorRules cover the three workload indicators. Risk-score rules live
// in riskRules because they prepend rather than append.
var indicatorRules = []recommendationRule{
	{
		applies: func(m Metrics) bool { return m.BioRatio > 8 },
		build: func(m Metrics) recommendation {
			return recommendation{
				priority: "HIGH",
				title:    "Infrastructure Capacity Enhancement",
				description: fmt.Sprintf("Given the exceptionally high biometric-to-enrollment ratio of %.2f, the district requires immediate investment in biometric infrastructure. "+
					"Establish additional enrollment centers with modern biometric capture devices (fingerprint scanners, iris readers) to handle the high volume of update transactions. "+
					"Implement queue management systems and stagger appointment schedules to distribute workload evenly throughout service hours.", m.BioRatio),
			}
		},
	},
	{
		applies: func(m Metrics) bool { return m.BioRatio > 5 && m.BioRatio <= 8 },
		build: func(m Metrics) recommendation {
			return recommendation{
				priority: "MEDIUM",
				title:    "Staffing and Resource Optimization",
				description: fmt.Sprintf("The biometric-to-enrollment ratio of %.2f indicates significant update workload. "+
					"Increase staffing levels at enrollment centers, particularly focusing on trained biometric operators and data entry personnel. "+
					"Provide regular training programs to ensure staff can efficiently process high-volume transactions while maintaining data quality standards.", m.BioRatio),
			}
		},
	},
	{
		applies: func(m Metrics) bool { return m.ChildPressure > 0.01 },
		build: func(m Metrics) recommendation {
			return recommendation{
				priority: "MEDIUM",
				title:    "Specialized Child Services Centers",
				description: fmt.Sprintf("The child update pressure metric (%.6f) indicates substantial activity. "+
					"Establish dedicated child-friendly enrollment centers with trained pediatric specialists who understand the unique challenges of capturing biometrics from children. "+
					"Implement flexible scheduling options aligned with school calendars and conduct mobile outreach camps in educational institutions.", m.ChildPressure),
			}
		},
	},
	{
		applies: func(m Metrics) bool { return m.ChildPressure > 0.005 && m.ChildPressure <= 0.01 },
		build: func(m Metrics) recommendation {
			return recommendation{
				priority:    "LOW",
				title:       "Child Services Enhancement",
				description: "Consider establishing periodic child enrollment camps to consolidate child-related updates and reduce ongoing pressure on regular centers.",
			}
		},
	},
	{
		applies: func(m Metrics) bool { return m.ElderlyPressure > 0.01 },
		build: func(m Metrics) recommendation {
			return recommendation{
				priority: "MEDIUM",
				title:    "Elderly-Focused Service Centers",
				description: fmt.Sprintf("The elderly update pressure metric (%.6f) suggests significant demand. "+
					"Establish specialized centers or dedicated time slots for elderly beneficiaries with accessibility features (ramps, seating areas, adequate lighting). "+
					"Train staff in patience and communication with elderly citizens. "+
					"Consider home-based enrollment for bedridden or immobile elderly individuals.", m.ElderlyPressure),
			}
		},
	},
	{
		applies: func(m Metrics) bool { return m.ElderlyPressure > 0.005 && m.ElderlyPressure <= 0.01 },
		build: func(m Metrics) recommendation {
			return recommendation{
				priority:    "LOW",
				title:       "Elderly Services Improvement",
				description: "Implement age-friendly service protocols and provide additional support during biometric capture for elderly beneficiaries.",
			}
		},
	},
}

// riskRules fire on the overall risk score and are inserted ahead of the
// indicator blocks; a critically stressed district leads with the emergency
// block regardless of which indicators tripped.
var riskRules = []recommendationRule{
	{
		applies: func(m Metrics) bool { return m.RiskScore > 0.04 },
		build: func(m Metrics) recommendation {
			return recommendation{
				priority: "CRITICAL",
				title:    "Emergency Service Review",
				description: "The risk score indicates critical service stress. " +
					"Conduct an immediate operational audit to identify bottlenecks, reallocate resources from low-pressure districts if possible, " +
					"and consider temporary service restrictions (appointment-only enrollment) to prevent system breakdown.",
			}
		},
	},
	{
		applies: func(m Metrics) bool { return m.RiskScore > 0.025 && m.RiskScore <= 0.04 },
		build: func(m Metrics) recommendation {
			return recommendation{
				priority: "HIGH",
				title:    "Service Load Balancing",
				description: "Implement load balancing measures by distributing enrollments across multiple service centers, " +
					"extending operational hours, and optimizing the enrollment process workflow to handle current demand more efficiently.",
			}
		},
	},
}

var defaultRecommendation = recommendation{
	priority: "INFORMATIONAL",
	title:    "Maintain Current Standards",
	description: "Current operations are efficiently managed with balanced workload distribution. " +
		"Continue with existing service delivery protocols and maintain staff training programs to sustain performance levels.",
}

// Recommendation renders the full policy recommendation text for one row's
// metrics: an ordered list of prose blocks selected by the rule tables,
// numbered and wrapped in a fixed header and implementation timeline.
func Recommendation(m Metrics) string {
	var recs []recommendation
	for _, rule := range indicatorRules {
		if rule.applies(m) {
			recs = append(recs, rule.build(m))
		}
	}
	for _, rule := range riskRules {
		if rule.applies(m) {
			recs = append([]recommendation{rule.build(m)}, recs...)
			break
		}
	}
	if len(recs) == 0 {
		recs = append(recs, defaultRecommendation)
	}

	var b strings.Builder
	b.WriteString("**Actionable Policy Recommendations for Administrative Authorities**\n\n")
	for i, rec := range recs {
		fmt.Fprintf(&b, "**%d. [%s] %s**\n%s\n\n", i+1, rec.priority, rec.title, rec.description)
	}
	b.WriteString("**Implementation Timeline:** Prioritize critical and high-priority recommendations for implementation within 30 days, with medium-priority items scheduled within 60-90 days.")
	return b.String()
}
