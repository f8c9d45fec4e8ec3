// Package fixtures holds the default records seeded when a business unit
// is bootstrapped.
package fixtures

import (
	"github.com/serviceportals/ops-backend-go/internal/domain/master/servicetype"
)

func strPtr(s string) *string { return &s }

// DefaultServiceTypes returns the service catalog a fresh business unit
// starts with.
func DefaultServiceTypes(unitID string) []servicetype.ServiceType {
	return []servicetype.ServiceType{
		{UnitID: unitID, Name: "Installation", Description: strPtr("On-site installation of new equipment")},
		{UnitID: unitID, Name: "Maintenance", Description: strPtr("Scheduled preventive maintenance visit")},
		{UnitID: unitID, Name: "Repair", Description: strPtr("Corrective repair for a reported fault")},
		{UnitID: unitID, Name: "Inspection", Description: strPtr("Assessment visit, no parts replaced")},
	}
}
