package observability

import (
	"log/slog"

	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"
)

// AuditHooks logs every lifecycle event at Info level.
func AuditHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnMutation: func(e *domain.MutationEvent) {
			attrs := []any{
				"build", e.Build,
				"action", e.Type,
				"total_points", e.TotalPoints,
			}
			if e.SkillID != "" {
				attrs = append(attrs, "skill", e.SkillID, "rank", e.Rank)
			}
			if e.Diff != nil {
				attrs = append(attrs, "changed", e.Diff.SkillIDs())
			}
			logger.Info("build_mutation", attrs...)
		},
		OnRejected: func(e *domain.RejectionEvent) {
			logger.Info("build_rejection",
				"build", e.Build,
				"action", e.Type,
				"skill", e.SkillID,
				"reason", e.Reason,
			)
		},
		OnTierChange: func(e *domain.TierEvent) {
			logger.Info("build_tier",
				"build", e.Build,
				"tier", e.Tier,
				"max_points", e.MaxPoints,
				"over_limit", e.OverLimit,
			)
		},
	}
}
