// Package router contains routing setup for the HTTP delivery.
package router

import (
	"freshware/internal/delivery/http/middleware"
	"freshware/internal/delivery/http/router/handler"
	"freshware/internal/domain/policy"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionMiddleware    *middleware.SessionMiddleware
	AuthHandler          *handler.AuthHandler
	WebhookHandler       *handler.WebhookHandler
	AccountHandler       *handler.AccountHandler
	ContactHandler       *handler.ContactHandler
	OpportunityHandler   *handler.OpportunityHandler
	MeetingHandler       *handler.MeetingHandler
	TaskHandler          *handler.TaskHandler
	ProposalHandler      *handler.ProposalHandler
	ProjectHandler       *handler.ProjectHandler
	DiscoveryHandler     *handler.DiscoveryHandler
	ActivityHandler      *handler.ActivityHandler
	AccessRequestHandler *handler.AccessRequestHandler
	UserHandler          *handler.UserHandler
	IntegrationHandler   *handler.IntegrationHandler
	DashboardHandler     *handler.DashboardHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	session := r.params.SessionMiddleware

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public endpoints: sign-in and the invite-only access request form.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/logout", r.params.AuthHandler.Logout)
		authGroup.GET("/me", r.params.AuthHandler.Me)
	}
	e.POST("/access-requests", r.params.AccessRequestHandler.Submit)

	// Provider webhooks authenticate with a per-tenant shared secret, not a
	// session, so they sit outside the authenticated groups.
	e.POST("/webhooks/youcanbookme/:accountID", r.params.WebhookHandler.IngestBooking)

	// Authenticated JSON API.
	api := e.Group("/api", session.RequireIdentity)
	{
		accounts := api.Group("/accounts")
		accounts.POST("", r.params.AccountHandler.Create, session.RequirePermission(policy.ResourceAccounts, policy.ActionCreate))
		accounts.GET("", r.params.AccountHandler.List, session.RequirePermission(policy.ResourceAccounts, policy.ActionRead))
		accounts.GET("/:id", r.params.AccountHandler.Get, session.RequirePermission(policy.ResourceAccounts, policy.ActionRead))
		accounts.PUT("/:id", r.params.AccountHandler.Update, session.RequirePermission(policy.ResourceAccounts, policy.ActionUpdate))
		accounts.DELETE("/:id", r.params.AccountHandler.Delete, session.RequirePermission(policy.ResourceAccounts, policy.ActionDelete))
		accounts.GET("/:id/activities", r.params.ActivityHandler.List, session.RequirePermission(policy.ResourceActivities, policy.ActionRead))
		accounts.PUT("/:id/integrations/:provider", r.params.IntegrationHandler.Connect, session.RequirePermission(policy.ResourceIntegrations, policy.ActionUpdate))
		accounts.DELETE("/:id/integrations/:provider", r.params.IntegrationHandler.Disconnect, session.RequirePermission(policy.ResourceIntegrations, policy.ActionUpdate))
		accounts.GET("/:id/integrations/:provider", r.params.IntegrationHandler.Get, session.RequirePermission(policy.ResourceIntegrations, policy.ActionRead))

		contacts := api.Group("/contacts")
		contacts.POST("", r.params.ContactHandler.Create, session.RequirePermission(policy.ResourceContacts, policy.ActionCreate))
		contacts.GET("", r.params.ContactHandler.List, session.RequirePermission(policy.ResourceContacts, policy.ActionRead))
		contacts.GET("/:id", r.params.ContactHandler.Get, session.RequirePermission(policy.ResourceContacts, policy.ActionRead))
		contacts.PUT("/:id", r.params.ContactHandler.Update, session.RequirePermission(policy.ResourceContacts, policy.ActionUpdate))
		contacts.DELETE("/:id", r.params.ContactHandler.Delete, session.RequirePermission(policy.ResourceContacts, policy.ActionDelete))

		opportunities := api.Group("/opportunities")
		opportunities.POST("", r.params.OpportunityHandler.Create, session.RequirePermission(policy.ResourceOpportunities, policy.ActionCreate))
		opportunities.GET("", r.params.OpportunityHandler.List, session.RequirePermission(policy.ResourceOpportunities, policy.ActionRead))
		opportunities.GET("/pipeline", r.params.OpportunityHandler.Pipeline, session.RequirePermission(policy.ResourceOpportunities, policy.ActionRead))
		opportunities.GET("/:id", r.params.OpportunityHandler.Get, session.RequirePermission(policy.ResourceOpportunities, policy.ActionRead))
		opportunities.PUT("/:id", r.params.OpportunityHandler.Update, session.RequirePermission(policy.ResourceOpportunities, policy.ActionUpdate))
		opportunities.DELETE("/:id", r.params.OpportunityHandler.Delete, session.RequirePermission(policy.ResourceOpportunities, policy.ActionDelete))

		meetings := api.Group("/meetings")
		meetings.POST("", r.params.MeetingHandler.Create, session.RequirePermission(policy.ResourceMeetings, policy.ActionCreate))
		meetings.GET("", r.params.MeetingHandler.List, session.RequirePermission(policy.ResourceMeetings, policy.ActionRead))
		meetings.GET("/:id", r.params.MeetingHandler.Get, session.RequirePermission(policy.ResourceMeetings, policy.ActionRead))
		meetings.PUT("/:id", r.params.MeetingHandler.Update, session.RequirePermission(policy.ResourceMeetings, policy.ActionUpdate))
		meetings.DELETE("/:id", r.params.MeetingHandler.Delete, session.RequirePermission(policy.ResourceMeetings, policy.ActionDelete))

		tasks := api.Group("/tasks")
		tasks.POST("", r.params.TaskHandler.Create, session.RequirePermission(policy.ResourceTasks, policy.ActionCreate))
		tasks.GET("", r.params.TaskHandler.List, session.RequirePermission(policy.ResourceTasks, policy.ActionRead))
		tasks.GET("/:id", r.params.TaskHandler.Get, session.RequirePermission(policy.ResourceTasks, policy.ActionRead))
		tasks.PUT("/:id", r.params.TaskHandler.Update, session.RequirePermission(policy.ResourceTasks, policy.ActionUpdate))
		tasks.DELETE("/:id", r.params.TaskHandler.Delete, session.RequirePermission(policy.ResourceTasks, policy.ActionDelete))

		proposals := api.Group("/proposals")
		proposals.POST("", r.params.ProposalHandler.Create, session.RequirePermission(policy.ResourceProposals, policy.ActionCreate))
		proposals.GET("", r.params.ProposalHandler.List, session.RequirePermission(policy.ResourceProposals, policy.ActionRead))
		proposals.GET("/:id", r.params.ProposalHandler.Get, session.RequirePermission(policy.ResourceProposals, policy.ActionRead))
		proposals.PUT("/:id", r.params.ProposalHandler.Update, session.RequirePermission(policy.ResourceProposals, policy.ActionUpdate))

		projects := api.Group("/projects")
		projects.POST("", r.params.ProjectHandler.Create, session.RequirePermission(policy.ResourceProjects, policy.ActionCreate))
		projects.GET("", r.params.ProjectHandler.List, session.RequirePermission(policy.ResourceProjects, policy.ActionRead))
		projects.GET("/:id", r.params.ProjectHandler.Get, session.RequirePermission(policy.ResourceProjects, policy.ActionRead))
		projects.PUT("/:id", r.params.ProjectHandler.Update, session.RequirePermission(policy.ResourceProjects, policy.ActionUpdate))

		discovery := api.Group("/discovery-sessions")
		discovery.POST("", r.params.DiscoveryHandler.Create, session.RequirePermission(policy.ResourceDiscoverySessions, policy.ActionCreate))
		discovery.GET("", r.params.DiscoveryHandler.List, session.RequirePermission(policy.ResourceDiscoverySessions, policy.ActionRead))
		discovery.GET("/:id", r.params.DiscoveryHandler.Get, session.RequirePermission(policy.ResourceDiscoverySessions, policy.ActionRead))
		discovery.PUT("/:id", r.params.DiscoveryHandler.Update, session.RequirePermission(policy.ResourceDiscoverySessions, policy.ActionUpdate))

		api.POST("/activities", r.params.ActivityHandler.Log, session.RequirePermission(policy.ResourceActivities, policy.ActionCreate))

		api.GET("/dashboard/kpis", r.params.DashboardHandler.KPIs, session.RequirePermission(policy.ResourceDashboard, policy.ActionRead))

		// Admin-only surfaces.
		admin := api.Group("/admin")
		{
			admin.GET("/access-requests", r.params.AccessRequestHandler.List, session.RequirePermission(policy.ResourceAccessRequests, policy.ActionRead))
			admin.POST("/access-requests/:id/approve", r.params.AccessRequestHandler.Approve, session.RequirePermission(policy.ResourceAccessRequests, policy.ActionUpdate))
			admin.POST("/access-requests/:id/deny", r.params.AccessRequestHandler.Deny, session.RequirePermission(policy.ResourceAccessRequests, policy.ActionUpdate))

			admin.POST("/users", r.params.UserHandler.Create, session.RequirePermission(policy.ResourceUsers, policy.ActionCreate))
			admin.GET("/users", r.params.UserHandler.List, session.RequirePermission(policy.ResourceUsers, policy.ActionRead))
			admin.GET("/users/:id", r.params.UserHandler.Get, session.RequirePermission(policy.ResourceUsers, policy.ActionRead))
			admin.PUT("/users/:id/role", r.params.UserHandler.UpdateRole, session.RequirePermission(policy.ResourceUsers, policy.ActionUpdate))
		}
	}
}
