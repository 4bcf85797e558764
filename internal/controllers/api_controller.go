package controllers

import (
	"net/http"

	json "github.com/goccy/go-json"

	"camsd/internal/attendance"
	"camsd/internal/models"
	"camsd/internal/providers"
	"camsd/internal/services"
	"camsd/internal/structures"
)

type ApiController struct {
	logger     providers.Logger
	service    services.AttendanceServiceInterface
	enterprise services.EnterpriseServiceInterface
	cache      providers.CacheProviderInterface
	conf       *structures.Config
}

func NewApiController(logger providers.Logger, service services.AttendanceServiceInterface, enterprise services.EnterpriseServiceInterface, cache providers.CacheProviderInterface, conf *structures.Config) *ApiController {
	return &ApiController{
		logger:     logger,
		service:    service,
		enterprise: enterprise,
		cache:      cache,
		conf:       conf,
	}
}

func getUser(r *http.Request) string {
	return r.URL.Query().Get("user")
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// attendanceResponse wraps the record list so clients get a stable shape
// even when a user has no synced data yet.
type attendanceResponse struct {
	UserID  string                `json:"userId"`
	Records []*models.PunchRecord `json:"records"`
}

func (ac *ApiController) GetAttendance(w http.ResponseWriter, r *http.Request) {
	user := getUser(r)
	if user == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	ac.serveFromCacheOrCompute(w, "att:"+user, func() (any, error) {
		records, err := ac.service.GetRecords(r.Context(), user)
		if err != nil {
			return nil, err
		}
		if records == nil {
			records = []*models.PunchRecord{}
		}
		return attendanceResponse{UserID: user, Records: records}, nil
	})
}

func (ac *ApiController) GetSummary(w http.ResponseWriter, r *http.Request) {
	user := getUser(r)
	if user == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	ac.serveFromCacheOrCompute(w, "sum:"+user, func() (any, error) {
		return ac.service.GetSummary(r.Context(), user)
	})
}

type todayResponse struct {
	Record        *models.PunchRecord `json:"record,omitempty"`
	NextAction    models.NextAction   `json:"nextAction"`
	LastPunchTime string              `json:"lastPunchTime,omitempty"`
	PunchCount    int                 `json:"punchCount"`
	Punches       []models.Punch      `json:"punches"`
}

func (ac *ApiController) GetToday(w http.ResponseWriter, r *http.Request) {
	user := getUser(r)
	if user == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	ac.serveFromCacheOrCompute(w, "today:"+user, func() (any, error) {
		rec, state, punches, err := ac.service.GetToday(r.Context(), user)
		if err != nil {
			return nil, err
		}
		if punches == nil {
			punches = []models.Punch{}
		}
		return todayResponse{
			Record:        rec,
			NextAction:    state.NextAction,
			LastPunchTime: state.LastPunchTime,
			PunchCount:    state.PunchCount,
			Punches:       punches,
		}, nil
	})
}

func (ac *ApiController) GetPunches(w http.ResponseWriter, r *http.Request) {
	user := getUser(r)
	if user == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	date := r.URL.Query().Get("date")
	if date != "" {
		norm, ok := attendance.NormalizeDate(date)
		if !ok {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		date = norm
	}
	ac.serveFromCacheOrCompute(w, "punches:"+user+":"+date, func() (any, error) {
		var (
			punches []models.Punch
			err     error
		)
		if date == "" {
			_, _, punches, err = ac.service.GetToday(r.Context(), user)
		} else {
			punches, err = ac.service.GetPunches(r.Context(), user, date)
		}
		if err != nil {
			return nil, err
		}
		if punches == nil {
			punches = []models.Punch{}
		}
		return punches, nil
	})
}

type markResponse struct {
	Action models.NextAction `json:"action"`
}

func (ac *ApiController) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	user := getUser(r)
	if user == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	action, err := ac.service.Mark(r.Context(), user)
	if err != nil {
		ac.logger.Errorf(providers.TypePost, "Mark failed for user %s: %s", user, err)
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
		return
	}

	gson, err := json.Marshal(markResponse{Action: action})
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write(gson)
}

func (ac *ApiController) ForceSync(w http.ResponseWriter, r *http.Request) {
	user := getUser(r)
	if user == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if err := ac.service.SyncUser(r.Context(), user); err != nil {
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (ac *ApiController) GetLeaves(w http.ResponseWriter, r *http.Request) {
	user := getUser(r)
	if user == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	ac.serveFromCacheOrCompute(w, "leaves:"+user, func() (any, error) {
		leaves, err := ac.enterprise.Leaves(r.Context(), user)
		if err != nil {
			return nil, err
		}
		if leaves == nil {
			leaves = []models.Leave{}
		}
		return leaves, nil
	})
}

func (ac *ApiController) GetLeaveBalance(w http.ResponseWriter, r *http.Request) {
	user := getUser(r)
	if user == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	ac.serveFromCacheOrCompute(w, "bal:"+user, func() (any, error) {
		return ac.enterprise.LeaveBalance(r.Context(), user)
	})
}

// GetSettings serves the org-wide settings document; it is the one endpoint
// with no user parameter.
func (ac *ApiController) GetSettings(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "settings", func() (any, error) {
		settings, err := ac.enterprise.Settings(r.Context())
		if err != nil {
			return nil, err
		}
		if settings == nil {
			settings = map[string]any{}
		}
		return settings, nil
	})
}

func (ac *ApiController) GetReimbursements(w http.ResponseWriter, r *http.Request) {
	user := getUser(r)
	if user == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	ac.serveFromCacheOrCompute(w, "reimb:"+user, func() (any, error) {
		claims, err := ac.enterprise.Reimbursements(r.Context(), user)
		if err != nil {
			return nil, err
		}
		if claims == nil {
			claims = []models.Reimbursement{}
		}
		return claims, nil
	})
}
