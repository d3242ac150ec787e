package rbac

import (
	"sync"

	"github.com/casbin/casbin/v2"
)

type EnforceRequest struct {
	Role     string
	Resource string
	Action   string
}

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req EnforceRequest) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
}

// Role->resource:action grants. There are exactly two roles; the policy is
// fixed at startup rather than loaded per tenant.
var defaultPolicies = [][]string{
	{"employee", "timelogs", "read"},
	{"employee", "timelogs", "create"},
	{"employee", "timelogs", "update"},
	{"employee", "profile", "read"},
	{"employee", "profile", "update"},

	{"admin", "timelogs", "read"},
	{"admin", "employees", "read"},
	{"admin", "payrolls", "read"},
}

func NewService(enforcer *casbin.Enforcer) (Service, error) {
	for _, p := range defaultPolicies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}
	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enforcer.Enforce(req.Role, req.Resource, req.Action)
}
