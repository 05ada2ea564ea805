// Package policy makes portal authorization explicit: a static rule set
// mapping {role, resource, action} to allow/deny, enforced in application
// code rather than in an opaque database policy engine. Tenant scoping for
// client users is applied separately by the use cases.
package policy

import "freshware/internal/domain/entity"

// Resource is a kind of CRM record an action can target.
type Resource string

const (
	ResourceAccounts          Resource = "accounts"
	ResourceContacts          Resource = "contacts"
	ResourceOpportunities     Resource = "opportunities"
	ResourceMeetings          Resource = "meetings"
	ResourceTasks             Resource = "tasks"
	ResourceProposals         Resource = "proposals"
	ResourceProjects          Resource = "projects"
	ResourceDiscoverySessions Resource = "discovery_sessions"
	ResourceActivities        Resource = "activities"
	ResourceAccessRequests    Resource = "access_requests"
	ResourceIntegrations      Resource = "integrations"
	ResourceUsers             Resource = "users"
	ResourceDashboard         Resource = "dashboard"
)

// Action is what the caller wants to do with a resource.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type permission struct {
	resource Resource
	action   Action
}

// write expands to the three mutating actions.
func write(r Resource) []permission {
	return []permission{
		{r, ActionCreate},
		{r, ActionUpdate},
		{r, ActionDelete},
	}
}

func read(rs ...Resource) []permission {
	perms := make([]permission, 0, len(rs))
	for _, r := range rs {
		perms = append(perms, permission{r, ActionRead})
	}

	return perms
}

func flatten(groups ...[]permission) []permission {
	var perms []permission
	for _, g := range groups {
		perms = append(perms, g...)
	}

	return perms
}

// rules is the whole authorization model. CEO and Admin bypass it entirely,
// so resources with no entry here (users, integrations, access requests) are
// admin-only.
var rules = map[entity.Role][]permission{
	entity.RoleSales: flatten(
		read(ResourceAccounts, ResourceContacts, ResourceOpportunities,
			ResourceMeetings, ResourceTasks, ResourceProposals, ResourceActivities),
		write(ResourceAccounts), write(ResourceContacts), write(ResourceOpportunities),
		write(ResourceMeetings), write(ResourceProposals), write(ResourceActivities),
	),
	entity.RoleOps: flatten(
		read(ResourceAccounts, ResourceContacts, ResourceMeetings, ResourceTasks,
			ResourceProjects, ResourceDiscoverySessions, ResourceActivities),
		write(ResourceTasks), write(ResourceProjects),
		write(ResourceDiscoverySessions), write(ResourceMeetings),
	),
	entity.RoleMarketing: flatten(
		read(ResourceAccounts, ResourceContacts, ResourceActivities),
		write(ResourceActivities),
	),
	entity.RoleStaff: flatten(
		read(ResourceAccounts, ResourceContacts, ResourceMeetings,
			ResourceTasks, ResourceActivities),
		[]permission{
			{ResourceTasks, ActionUpdate},
			{ResourceActivities, ActionCreate},
		},
	),
	// Client users only ever see records for their own account; the tenant
	// filter is applied by the use cases on top of this rule set.
	entity.RoleClient: read(ResourceProjects, ResourceProposals, ResourceMeetings),
}

// Allowed reports whether the role may perform the action on the resource.
func Allowed(role entity.Role, resource Resource, action Action) bool {
	if role == entity.RoleCEO || role == entity.RoleAdmin {
		return true
	}

	for _, p := range rules[role] {
		if p.resource == resource && p.action == action {
			return true
		}
	}

	return false
}
