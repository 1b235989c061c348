package personal

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/runnerr0/patina/internal/config"
	"github.com/runnerr0/patina/internal/render"
)

var heavyRule = strings.Repeat("═", 75)

func generateHealth(id config.Identity, now time.Time, healthDir string) ([]string, error) {
	path := filepath.Join(healthDir, "Health_Records.pdf")
	err := render.WritePDF(path, "Personal Health Records", []render.Section{
		{Heading: "Records", Body: healthRecordText(id, now)},
	})
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

// healthRecordText summarizes the prior year's visits and the standing
// immunization and insurance details.
func healthRecordText(id config.Identity, now time.Time) string {
	prior := now.Year() - 1

	var b strings.Builder
	fmt.Fprintf(&b, "PERSONAL HEALTH RECORDS\n%s\n\n%s\n\n", id.Name, heavyRule)

	b.WriteString("PERSONAL INFORMATION\n\n")
	fmt.Fprintf(&b, "Name: %s\n", id.Name)
	fmt.Fprintf(&b, "Date of Birth: %s\n", id.BirthDate)
	b.WriteString("Blood Type: O+\n")
	b.WriteString("Allergies: None known\n")
	fmt.Fprintf(&b, "Emergency Contact: Sarah %s - (415) 555-0198\n\n%s\n\n", id.LastName, heavyRule)

	b.WriteString("PRIMARY CARE PHYSICIAN\n\n")
	b.WriteString("Dr. Emily Rodriguez, MD\n")
	b.WriteString("Bay Area Medical Group\n")
	b.WriteString("1234 Healthcare Drive, Suite 200\n")
	b.WriteString("San Francisco, CA 94110\n")
	b.WriteString("Phone: (415) 555-0123\n")
	fmt.Fprintf(&b, "Fax: (415) 555-0124\n\n%s\n\n", heavyRule)

	b.WriteString("RECENT VISITS\n\n")
	fmt.Fprintf(&b, "Date: November 15, %d\n", prior)
	b.WriteString("Type: Annual Physical Examination\n")
	b.WriteString("Provider: Dr. Emily Rodriguez\n")
	b.WriteString("Notes: Routine checkup. All vitals normal.\n")
	b.WriteString("       Blood pressure: 118/76\n")
	b.WriteString("       Weight: 175 lbs\n")
	b.WriteString("       Height: 5'10\"\n")
	b.WriteString("       Recommended: Continue regular exercise routine\n\n")
	fmt.Fprintf(&b, "Date: June 22, %d\n", prior)
	b.WriteString("Type: Follow-up Appointment\n")
	b.WriteString("Provider: Dr. Emily Rodriguez\n")
	b.WriteString("Notes: Reviewed lab results. All values within normal range.\n")
	b.WriteString("       Cholesterol: 185 mg/dL (optimal)\n")
	b.WriteString("       Blood glucose: 92 mg/dL (normal)\n\n")
	fmt.Fprintf(&b, "Date: March 10, %d\n", prior)
	b.WriteString("Type: Flu Vaccination\n")
	b.WriteString("Provider: Nurse Johnson\n")
	fmt.Fprintf(&b, "Notes: Seasonal flu vaccine administered. No adverse reactions.\n\n%s\n\n", heavyRule)

	b.WriteString("IMMUNIZATION RECORD\n\n")
	fmt.Fprintf(&b, "Influenza:              Annually (Last: October %d)\n", prior)
	fmt.Fprintf(&b, "Tetanus/Diphtheria:     %d (Next due: %d)\n", prior-5, prior+5)
	fmt.Fprintf(&b, "COVID-19:               Boosted September %d\n", prior)
	b.WriteString("MMR:                    Childhood (Documented)\n")
	fmt.Fprintf(&b, "Hepatitis B:            Childhood (Documented)\n\n%s\n\n", heavyRule)

	b.WriteString("CURRENT MEDICATIONS\n\n")
	b.WriteString("None\n\n")
	b.WriteString("OVER-THE-COUNTER:\n")
	b.WriteString("• Daily multivitamin\n")
	b.WriteString("• Vitamin D supplement (2000 IU)\n")
	fmt.Fprintf(&b, "• Omega-3 fish oil\n\n%s\n\n", heavyRule)

	b.WriteString("INSURANCE INFORMATION\n\n")
	b.WriteString("Provider: Blue Cross Blue Shield\n")
	b.WriteString("Plan: PPO Gold\n")
	b.WriteString("Member ID: BC12345678901\n")
	fmt.Fprintf(&b, "Group: %s\n", groupCode(id.Company))
	fmt.Fprintf(&b, "Phone: 1-800-123-4567\n\n%s\n\n", heavyRule)

	b.WriteString("NOTES\n\n")
	b.WriteString("• Exercise regularly (3-4x per week)\n")
	b.WriteString("• No chronic conditions\n")
	b.WriteString("• Annual physical scheduled for November each year\n")
	b.WriteString("• Maintain healthy diet and lifestyle\n")
	fmt.Fprintf(&b, "• No smoking, moderate alcohol consumption\n\n%s\n", heavyRule)

	return b.String()
}

// groupCode derives the insurer group id from the employer name: the
// first five letters uppercased plus a plan suffix.
func groupCode(company string) string {
	var letters []rune
	for _, r := range company {
		if !unicode.IsLetter(r) {
			continue
		}
		letters = append(letters, unicode.ToUpper(r))
		if len(letters) == 5 {
			break
		}
	}
	return string(letters) + "001"
}
