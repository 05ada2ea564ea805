package policy

import (
	"testing"

	"freshware/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

var allResources = []Resource{
	ResourceAccounts, ResourceContacts, ResourceOpportunities, ResourceMeetings,
	ResourceTasks, ResourceProposals, ResourceProjects, ResourceDiscoverySessions,
	ResourceActivities, ResourceAccessRequests, ResourceIntegrations,
	ResourceUsers, ResourceDashboard,
}

func TestAllowed_AdminAndCEOBypass(t *testing.T) {
	for _, role := range []entity.Role{entity.RoleCEO, entity.RoleAdmin} {
		for _, res := range allResources {
			for _, act := range []Action{ActionRead, ActionCreate, ActionUpdate, ActionDelete} {
				assert.True(t, Allowed(role, res, act), "%s should be allowed %s on %s", role, act, res)
			}
		}
	}
}

func TestAllowed_RoleMatrix(t *testing.T) {
	tests := []struct {
		name     string
		role     entity.Role
		resource Resource
		action   Action
		want     bool
	}{
		{"sales can create opportunities", entity.RoleSales, ResourceOpportunities, ActionCreate, true},
		{"sales can read proposals", entity.RoleSales, ResourceProposals, ActionRead, true},
		{"sales cannot touch projects", entity.RoleSales, ResourceProjects, ActionRead, false},
		{"sales cannot read dashboard", entity.RoleSales, ResourceDashboard, ActionRead, false},
		{"ops can create tasks", entity.RoleOps, ResourceTasks, ActionCreate, true},
		{"ops can update discovery sessions", entity.RoleOps, ResourceDiscoverySessions, ActionUpdate, true},
		{"ops cannot create opportunities", entity.RoleOps, ResourceOpportunities, ActionCreate, false},
		{"marketing can log activities", entity.RoleMarketing, ResourceActivities, ActionCreate, true},
		{"marketing cannot read meetings", entity.RoleMarketing, ResourceMeetings, ActionRead, false},
		{"staff can update tasks", entity.RoleStaff, ResourceTasks, ActionUpdate, true},
		{"staff cannot delete tasks", entity.RoleStaff, ResourceTasks, ActionDelete, false},
		{"client can read own projects", entity.RoleClient, ResourceProjects, ActionRead, true},
		{"client cannot read accounts", entity.RoleClient, ResourceAccounts, ActionRead, false},
		{"client cannot create anything", entity.RoleClient, ResourceMeetings, ActionCreate, false},
		{"nobody but admins review access requests", entity.RoleSales, ResourceAccessRequests, ActionUpdate, false},
		{"unknown role denied", entity.Role("ghost"), ResourceAccounts, ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.role, tt.resource, tt.action))
		})
	}
}
