package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dormdesk/dormdesk/internal/domain"
	"github.com/dormdesk/dormdesk/internal/service"
	"github.com/dormdesk/dormdesk/internal/store"
	"github.com/dormdesk/dormdesk/pkg/httpx"
	"github.com/dormdesk/dormdesk/pkg/jwtx"
	"github.com/dormdesk/dormdesk/pkg/slogx"

	_ "github.com/dormdesk/dormdesk/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	codec        *jwtx.Codec
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store              store.Store
	AuthService        *service.AuthService
	UserService        *service.UserService
	DormService        *service.DormService
	RoomService        *service.RoomService
	ReservationService *service.ReservationService
	ContractService    *service.ContractService
	BillService        *service.BillService
	RepairService      *service.RepairService
	UploadService      *service.UploadService
}

func NewRouter(codec *jwtx.Codec, buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		codec:        codec,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerProfile()
	r.registerDorms()
	r.registerRooms()
	r.registerReservations()
	r.registerContracts()
	r.registerBills()
	r.registerRepairs()
	r.registerUploads()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			DormDesk API
//	@version		0.1.0
//	@description	Multi-tenant dormitory management: dorms, rooms, reservations, contracts, monthly billing and repairs.
//	@description
//	@description				Authentication is JWT-based with short-lived access tokens and password-hash-keyed refresh tokens.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authed wraps a handler with token verification and a per-user rate limit.
func (r *Router) authed(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitByUser(limit),
	)
}

// authedRole additionally requires the resolved role name to match exactly.
func (r *Router) authedRole(h http.Handler, role string, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.codec),
		httpx.RequireRole(role, r.store.Roles()),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerAuth() {
	auth := &AuthHandler{AuthService: r.AuthService}
	register := &RegisterHandler{UserService: r.UserService}

	// Credential endpoints get the strict per-IP limit against brute force.
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(auth.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/refresh",
		httpx.Chain(http.HandlerFunc(auth.HandleRefresh),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(register,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerProfile() {
	h := &MeHandler{UserService: r.UserService}

	r.Mux.Handle("GET /v1/me", r.authed(http.HandlerFunc(h.HandleGet), httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/me", r.authed(http.HandlerFunc(h.HandlePatch), httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/me/password", r.authed(http.HandlerFunc(h.HandleChangePassword), httpx.StrictLimit))
}

func (r *Router) registerDorms() {
	h := &DormsHandler{DormService: r.DormService}

	// Public browse endpoint, generous per-IP limit.
	r.Mux.Handle("GET /v1/listing",
		httpx.Chain(http.HandlerFunc(h.HandleListing),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	r.Mux.Handle("POST /v1/dorms", r.authedRole(http.HandlerFunc(h.HandleCreate), domain.RoleOwner, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/dorms", r.authedRole(http.HandlerFunc(h.HandleList), domain.RoleOwner, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/dorms/{id}", r.authed(http.HandlerFunc(h.HandleGet), httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/dorms/{id}", r.authedRole(http.HandlerFunc(h.HandleUpdate), domain.RoleOwner, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/dorms/{id}", r.authedRole(http.HandlerFunc(h.HandleDelete), domain.RoleOwner, httpx.ModerateLimit))
}

func (r *Router) registerRooms() {
	h := &RoomsHandler{RoomService: r.RoomService}

	r.Mux.Handle("POST /v1/dorms/{id}/rooms", r.authedRole(http.HandlerFunc(h.HandleCreate), domain.RoleOwner, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/dorms/{id}/rooms/batch", r.authedRole(http.HandlerFunc(h.HandleBatchCreate), domain.RoleOwner, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/dorms/{id}/rooms", r.authed(http.HandlerFunc(h.HandleList), httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/rooms/{id}", r.authedRole(http.HandlerFunc(h.HandleUpdate), domain.RoleOwner, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/rooms/{id}/status", r.authedRole(http.HandlerFunc(h.HandleSetStatus), domain.RoleOwner, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/rooms/{id}", r.authedRole(http.HandlerFunc(h.HandleDelete), domain.RoleOwner, httpx.ModerateLimit))
}

func (r *Router) registerReservations() {
	h := &ReservationsHandler{ReservationService: r.ReservationService}

	r.Mux.Handle("POST /v1/reservations", r.authedRole(http.HandlerFunc(h.HandleCreate), domain.RoleTenant, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/reservations", r.authed(http.HandlerFunc(h.HandleListMine), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/reservations/incoming", r.authedRole(http.HandlerFunc(h.HandleListIncoming), domain.RoleOwner, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/reservations/{id}/approve", r.authedRole(http.HandlerFunc(h.HandleApprove), domain.RoleOwner, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/reservations/{id}/reject", r.authedRole(http.HandlerFunc(h.HandleReject), domain.RoleOwner, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/reservations/{id}/cancel", r.authedRole(http.HandlerFunc(h.HandleCancel), domain.RoleTenant, httpx.ModerateLimit))
}

func (r *Router) registerContracts() {
	h := &ContractsHandler{ContractService: r.ContractService}

	r.Mux.Handle("GET /v1/contracts", r.authed(http.HandlerFunc(h.HandleListMine), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/contracts/owned", r.authedRole(http.HandlerFunc(h.HandleListOwned), domain.RoleOwner, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/contracts/{id}", r.authed(http.HandlerFunc(h.HandleGet), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/contracts/{id}/terminate", r.authedRole(http.HandlerFunc(h.HandleTerminate), domain.RoleOwner, httpx.ModerateLimit))
}

func (r *Router) registerBills() {
	h := &BillsHandler{BillService: r.BillService}

	r.Mux.Handle("POST /v1/contracts/{id}/bills", r.authedRole(http.HandlerFunc(h.HandleIssue), domain.RoleOwner, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/contracts/{id}/bills", r.authed(http.HandlerFunc(h.HandleListByContract), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/bills", r.authed(http.HandlerFunc(h.HandleListMine), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/bills/owned", r.authedRole(http.HandlerFunc(h.HandleListOwned), domain.RoleOwner, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/bills/{id}", r.authed(http.HandlerFunc(h.HandleGet), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/bills/{id}/submit", r.authedRole(http.HandlerFunc(h.HandleSubmit), domain.RoleTenant, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/bills/{id}/confirm", r.authedRole(http.HandlerFunc(h.HandleConfirm), domain.RoleOwner, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/bills/{id}/void", r.authedRole(http.HandlerFunc(h.HandleVoid), domain.RoleOwner, httpx.ModerateLimit))
}

func (r *Router) registerRepairs() {
	h := &RepairsHandler{RepairService: r.RepairService}

	r.Mux.Handle("POST /v1/repairs", r.authedRole(http.HandlerFunc(h.HandleCreate), domain.RoleTenant, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/repairs", r.authed(http.HandlerFunc(h.HandleListMine), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/repairs/incoming", r.authedRole(http.HandlerFunc(h.HandleListIncoming), domain.RoleOwner, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/repairs/{id}", r.authed(http.HandlerFunc(h.HandleGet), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/repairs/{id}/status", r.authedRole(http.HandlerFunc(h.HandleSetStatus), domain.RoleOwner, httpx.ModerateLimit))
}

func (r *Router) registerUploads() {
	h := &UploadsHandler{UploadService: r.UploadService}
	r.Mux.Handle("POST /v1/uploads/presign", r.authed(h, httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
