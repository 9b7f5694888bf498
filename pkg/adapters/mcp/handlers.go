package mcp

import (
	"context"
	"fmt"

	skilltree "github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) handleCreateBuild(ctx context.Context, _ mcp.CallToolRequest, args TierArgs) (BuildView, error) {
	var opts []skilltree.Option
	if args.ExpeditionTier != nil {
		if *args.ExpeditionTier < 0 {
			return BuildView{}, fmt.Errorf("expedition_tier must not be negative")
		}
		opts = append(opts, skilltree.WithExpeditionTier(*args.ExpeditionTier))
	}

	id, err := s.builds.Create(ctx, opts...)
	if err != nil {
		return BuildView{}, err
	}
	s.logger.Debug("MCP: build created", "build", id)
	return s.view(ctx, id)
}

func (s *Server) handleGetBuild(ctx context.Context, _ mcp.CallToolRequest, args BuildArgs) (BuildView, error) {
	if args.BuildID == "" {
		return BuildView{}, errMissing("build_id")
	}
	return s.view(ctx, args.BuildID)
}

func (s *Server) handleAllocate(ctx context.Context, _ mcp.CallToolRequest, args SkillArgs) (MutationResult, error) {
	return s.mutateSkill(ctx, args, func(p *skilltree.Planner, id string) (bool, domain.Denial) {
		reason := p.AllocationDenial(id)
		return p.Allocate(id), reason
	})
}

func (s *Server) handleDeallocate(ctx context.Context, _ mcp.CallToolRequest, args SkillArgs) (MutationResult, error) {
	return s.mutateSkill(ctx, args, func(p *skilltree.Planner, id string) (bool, domain.Denial) {
		reason := p.DeallocationDenial(id)
		return p.Deallocate(id), reason
	})
}

func (s *Server) handleResetSkill(ctx context.Context, _ mcp.CallToolRequest, args SkillArgs) (MutationResult, error) {
	return s.mutateSkill(ctx, args, func(p *skilltree.Planner, id string) (bool, domain.Denial) {
		reason := p.ResetDenial(id)
		return p.ResetSkill(id), reason
	})
}

func (s *Server) handleResetBuild(ctx context.Context, _ mcp.CallToolRequest, args BuildArgs) (MutationResult, error) {
	return s.mutate(ctx, args.BuildID, func(p *skilltree.Planner) (bool, string) {
		return p.ResetAll(), ""
	})
}

func (s *Server) handleSetTier(ctx context.Context, _ mcp.CallToolRequest, args TierArgs) (MutationResult, error) {
	if args.ExpeditionTier == nil {
		return MutationResult{}, errMissing("expedition_tier")
	}
	tier := *args.ExpeditionTier
	return s.mutate(ctx, args.BuildID, func(p *skilltree.Planner) (bool, string) {
		if p.SetExpeditionTier(tier) {
			return true, ""
		}
		return false, "invalid_tier"
	})
}

func (s *Server) handleUndo(ctx context.Context, _ mcp.CallToolRequest, args BuildArgs) (MutationResult, error) {
	return s.mutate(ctx, args.BuildID, func(p *skilltree.Planner) (bool, string) {
		if p.Undo() {
			return true, ""
		}
		return false, "nothing_to_undo"
	})
}

func (s *Server) handleRedo(ctx context.Context, _ mcp.CallToolRequest, args BuildArgs) (MutationResult, error) {
	return s.mutate(ctx, args.BuildID, func(p *skilltree.Planner) (bool, string) {
		if p.Redo() {
			return true, ""
		}
		return false, "nothing_to_redo"
	})
}

func (s *Server) handleListSkills(_ context.Context, _ mcp.CallToolRequest, args ListSkillsArgs) (SkillList, error) {
	if args.Tree == "" {
		return SkillList{Skills: s.catalog.Skills()}, nil
	}
	tree, err := domain.ParseTree(args.Tree)
	if err != nil {
		return SkillList{}, err
	}
	return SkillList{Skills: s.catalog.InTree(tree)}, nil
}

func (s *Server) mutateSkill(ctx context.Context, args SkillArgs, op func(p *skilltree.Planner, id string) (bool, domain.Denial)) (MutationResult, error) {
	if args.SkillID == "" {
		return MutationResult{}, errMissing("skill_id")
	}
	return s.mutate(ctx, args.BuildID, func(p *skilltree.Planner) (bool, string) {
		applied, reason := op(p, args.SkillID)
		return applied, string(reason)
	})
}

func (s *Server) mutate(ctx context.Context, buildID string, op func(p *skilltree.Planner) (bool, string)) (MutationResult, error) {
	if buildID == "" {
		return MutationResult{}, errMissing("build_id")
	}

	var res MutationResult
	err := s.builds.WithBuild(ctx, buildID, func(_ context.Context, p *skilltree.Planner) error {
		applied, reason := op(p)
		res.Applied = applied
		if !applied {
			res.Reason = reason
		}
		res.Build = p.Snapshot()
		return nil
	})
	if err != nil {
		return MutationResult{}, fmt.Errorf("build %s: %w", buildID, err)
	}
	return res, nil
}

func (s *Server) view(ctx context.Context, id string) (BuildView, error) {
	out := BuildView{ID: id}
	err := s.builds.WithBuild(ctx, id, func(_ context.Context, p *skilltree.Planner) error {
		out.Build = p.Snapshot()
		out.Summary = p.BuildSummary()
		out.Radar = p.Radar()
		return nil
	})
	if err != nil {
		return BuildView{}, fmt.Errorf("build %s: %w", id, err)
	}
	return out, nil
}

func errMissing(field string) error {
	return fmt.Errorf("missing required argument %q", field)
}
