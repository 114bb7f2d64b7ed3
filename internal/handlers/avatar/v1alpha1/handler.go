// Package v1alpha1 handles the AvatarService gRPC interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/oripheon-api/internal/errors"
	"github.com/KirkDiggler/oripheon-api/internal/orchestrators/avatar"
)

// HandlerConfig holds dependencies for the avatar handler
type HandlerConfig struct {
	AvatarService avatar.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.AvatarService == nil {
		return errors.InvalidArgument("avatar service is required")
	}
	return nil
}

// Handler implements AvatarServiceServer
type Handler struct {
	avatarService avatar.Service
}

// NewHandler creates a new avatar handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{avatarService: cfg.AvatarService}, nil
}

// Generate creates and stores a new avatar
func (h *Handler) Generate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var params GenerateRequest
	if err := decodeRequest(req, &params); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := checkSeed(params.Seed); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.avatarService.Generate(ctx, &avatar.GenerateInput{Params: params})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(AvatarResponse{Avatar: out.Avatar})
}

// Reroll regenerates a stored avatar, keeping the locked paths
func (h *Handler) Reroll(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in RerollRequest
	if err := decodeRequest(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.ID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("id is required"))
	}
	if err := checkSeed(in.Params.Seed); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.avatarService.Reroll(ctx, &avatar.RerollInput{
		ID:     in.ID,
		Params: in.Params,
		Locks:  in.Locks,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(AvatarResponse{Avatar: out.Avatar})
}

// GetAvatar returns one stored avatar
func (h *Handler) GetAvatar(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in IDRequest
	if err := decodeRequest(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.ID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("id is required"))
	}

	out, err := h.avatarService.Get(ctx, &avatar.GetInput{ID: in.ID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(AvatarResponse{Avatar: out.Avatar})
}

// ListAvatars returns a page of avatars, newest first
func (h *Handler) ListAvatars(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in ListRequest
	if err := decodeRequest(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.avatarService.List(ctx, &avatar.ListInput{Limit: in.Limit, Offset: in.Offset})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(ListResponse{
		Avatars: out.Avatars,
		Limit:   out.Limit,
		Offset:  out.Offset,
		Total:   out.Total,
	})
}

// DeleteAvatar removes a stored avatar
func (h *Handler) DeleteAvatar(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in IDRequest
	if err := decodeRequest(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.ID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("id is required"))
	}

	if _, err := h.avatarService.Delete(ctx, &avatar.DeleteInput{ID: in.ID}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &structpb.Struct{}, nil
}

// NameCandidates forges ranked names without storing anything
func (h *Handler) NameCandidates(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in NameCandidatesRequest
	if err := decodeRequest(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := checkSeed(in.Seed); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.avatarService.NameCandidates(ctx, &avatar.NameCandidatesInput{
		Seed:          in.Seed,
		Archetype:     in.Archetype,
		Traits:        in.Traits,
		Style:         in.Style,
		NameMode:      in.NameMode,
		AllowTitles:   in.AllowTitles,
		AllowEpithets: in.AllowEpithets,
		Candidates:    in.Candidates,
		Limit:         in.Limit,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(NameCandidatesResponse{Names: out.Names, Seed: out.Seed})
}

// ExportAvatar renders a stored avatar in an external schema
func (h *Handler) ExportAvatar(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in ExportRequest
	if err := decodeRequest(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.ID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("id is required"))
	}
	if in.Format == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("format is required"))
	}

	out, err := h.avatarService.Export(ctx, &avatar.ExportInput{ID: in.ID, Format: in.Format})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(ExportResponse{Format: string(out.Format), Payload: out.Payload})
}

// Catalog lists the registries
func (h *Handler) Catalog(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.avatarService.Catalog(ctx, &avatar.CatalogInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(out)
}

var _ AvatarServiceServer = (*Handler)(nil)

func respond(v any) (*structpb.Struct, error) {
	out, err := encodeResponse(v)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}
