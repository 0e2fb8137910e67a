package stress

import (
	"fmt"
	"math"
	"strings"
)

// band maps a half-open value range to one fixed paragraph. Bands are ordered
// by upper bound; the first band whose bound exceeds the value applies, so the
// last band should carry +Inf as its catch-all.
type band struct {
	below float64
	text  string
}

func pick(bands []band, v float64) string {
	for _, b := range bands {
		if v < b.below {
			return b.text
		}
	}
	return bands[len(bands)-1].text
}

var overallRiskBands = []band{
	{0.001, "**Overall Risk Assessment:** This district demonstrates exceptionally low service stress with highly efficient Aadhaar operations. The minimal risk score indicates that biometric enrollment and update processes are operating at optimal capacity with minimal operational strain.\n\n"},
	{0.01, "**Overall Risk Assessment:** This district exhibits low service stress with stable and reliable operations. The risk metrics indicate well-balanced workflow management and adequate infrastructure to handle current demand for biometric services.\n\n"},
	{0.03, "**Overall Risk Assessment:** This district shows moderate service stress that warrants active monitoring and proactive management. While operations remain functional, there are indicators of increasing pressure on existing infrastructure and resources.\n\n"},
	{math.Inf(1), "**Overall Risk Assessment:** This district experiences significant service stress with elevated risk of operational challenges. Immediate attention to infrastructure and resource allocation is recommended to prevent service degradation.\n\n"},
}

var bioRatioBands = []band{
	{2, "This ratio is excellent, indicating more new enrollments than updates. This suggests a growing biometric database and healthy expansion of Aadhaar coverage in the district.\n\n"},
	{5, "This ratio is balanced, showing a healthy proportion of updates to new enrollments. This indicates mature coverage with stable maintenance of existing records.\n\n"},
	{10, "This ratio is relatively high, indicating significantly more biometric updates than new enrollments. This suggests the district has high coverage saturation and is experiencing substantial workload from updating existing records. The high ratio may strain operational resources as updating existing records requires verification and validation procedures.\n\n"},
	{math.Inf(1), "This ratio is very high, indicating a substantial number of biometric updates relative to new enrollments. This suggests the district has achieved near-complete coverage and is now managing a significant volume of record updates. Such high activity could indicate address changes, demographic updates, or periodic re-enrollment activities consuming considerable operational resources.\n\n"},
}

var childPressureBands = []band{
	{0.001, "Minimal child biometric update activity. Child-related updates are not a significant driver of service stress in this district.\n\n"},
	{0.01, "Low to moderate child biometric update activity. There is some workload from child-related updates, but it remains manageable within current operational capacity.\n\n"},
	{math.Inf(1), "Significant child biometric update pressure. The district is experiencing notable demand for child-related biometric services. This may be due to periodic biometric update campaigns for school-age children, age-based re-enrollment mandates, or demographic initiatives. These activities require specialized handling and may impact overall service capacity.\n\n"},
}

var elderlyPressureBands = []band{
	{0.001, "Minimal elderly biometric update activity. Elderly-related updates are not a significant contributor to service stress.\n\n"},
	{0.01, "Low to moderate elderly biometric update activity. Some workload exists but remains well within operational capacity.\n\n"},
	{math.Inf(1), "Notable elderly biometric update pressure. The district is managing significant demand for elderly-focused biometric services. This may reflect aging population demographics, health-related biometric updates, or special outreach programs for senior citizens. Elderly beneficiaries often require additional time and support during biometric capture, potentially impacting throughput.\n\n"},
}

// Explanation renders the narrative analysis for one row: an overall risk
// band, one paragraph per indicator band with the value interpolated, and a
// fixed closing insight.
func Explanation(district, state, date string, m Metrics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**District Analysis for %s, %s (Date: %s)**\n\n", district, state, date)

	b.WriteString(pick(overallRiskBands, m.RiskScore))

	b.WriteString("**Detailed Factor Analysis:**\n\n")

	fmt.Fprintf(&b, "1. **Biometric-to-Enrollment Ratio (%.2f):** ", m.BioRatio)
	b.WriteString(pick(bioRatioBands, m.BioRatio))

	fmt.Fprintf(&b, "2. **Child Update Pressure (%.6f):** ", m.ChildPressure)
	b.WriteString(pick(childPressureBands, m.ChildPressure))

	fmt.Fprintf(&b, "3. **Elderly Update Pressure (%.6f):** ", m.ElderlyPressure)
	b.WriteString(pick(elderlyPressureBands, m.ElderlyPressure))

	b.WriteString("**Key Insight:** This district exhibits moderate service stress, primarily driven by a high biometric-to-enrollment ratio. This suggests the district has achieved high Aadhaar penetration and is now in a phase of managing updates and demographic changes rather than new enrollments. Infrastructure and staffing should be calibrated to handle this update-heavy workload efficiently.")
	return b.String()
}
