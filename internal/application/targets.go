package application

import "github.com/bnema/portal-credits/internal/domain"

// Targets resolves the acquisition settings of a portal.
type Targets interface {
	Target(portal domain.Portal) domain.PortalTarget
}

// TargetMap is a fixed set of targets.
type TargetMap map[domain.Portal]domain.PortalTarget

func (m TargetMap) Target(portal domain.Portal) domain.PortalTarget {
	if target, ok := m[portal]; ok {
		return target
	}
	return domain.PortalTarget{Portal: portal}
}
