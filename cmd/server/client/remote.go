package client

import (
	"context"
	"time"

	"github.com/KirkDiggler/oripheon-api/cmd/server/params"
	"github.com/KirkDiggler/oripheon-api/internal/errors"
	"github.com/KirkDiggler/oripheon-api/internal/exporters"
	"github.com/KirkDiggler/oripheon-api/internal/handlers/avatar/v1alpha1"
	"github.com/KirkDiggler/oripheon-api/internal/orchestrators/avatar"
)

// RemoteService implements avatar.Service over the gRPC avatar API
type RemoteService struct {
	client  v1alpha1.AvatarServiceClient
	timeout time.Duration
}

// NewRemoteService wraps a client. A zero timeout leaves the caller's
// deadline alone.
func NewRemoteService(client v1alpha1.AvatarServiceClient, timeout time.Duration) *RemoteService {
	return &RemoteService{client: client, timeout: timeout}
}

var _ avatar.Service = (*RemoteService)(nil)

func (r *RemoteService) call(ctx context.Context, method string, req, resp any) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	in, err := v1alpha1.EncodeRequest(req)
	if err != nil {
		return err
	}

	out, err := r.client.Call(ctx, method, in)
	if err != nil {
		return errors.FromGRPCError(err)
	}

	if resp == nil {
		return nil
	}
	return v1alpha1.DecodeResponse(out, resp)
}

// Generate creates an avatar on the server
func (r *RemoteService) Generate(ctx context.Context, input *avatar.GenerateInput) (*avatar.GenerateOutput, error) {
	if err := params.CheckSeed(input.Params.Seed); err != nil {
		return nil, err
	}
	var resp v1alpha1.AvatarResponse
	if err := r.call(ctx, v1alpha1.MethodGenerate, input.Params, &resp); err != nil {
		return nil, err
	}
	return &avatar.GenerateOutput{Avatar: resp.Avatar}, nil
}

// Reroll regenerates an avatar on the server
func (r *RemoteService) Reroll(ctx context.Context, input *avatar.RerollInput) (*avatar.RerollOutput, error) {
	if err := params.CheckSeed(input.Params.Seed); err != nil {
		return nil, err
	}
	req := v1alpha1.RerollRequest{ID: input.ID, Params: input.Params, Locks: input.Locks}
	var resp v1alpha1.AvatarResponse
	if err := r.call(ctx, v1alpha1.MethodReroll, req, &resp); err != nil {
		return nil, err
	}
	return &avatar.RerollOutput{Avatar: resp.Avatar}, nil
}

// Get fetches an avatar
func (r *RemoteService) Get(ctx context.Context, input *avatar.GetInput) (*avatar.GetOutput, error) {
	var resp v1alpha1.AvatarResponse
	if err := r.call(ctx, v1alpha1.MethodGetAvatar, v1alpha1.IDRequest{ID: input.ID}, &resp); err != nil {
		return nil, err
	}
	return &avatar.GetOutput{Avatar: resp.Avatar}, nil
}

// Delete removes an avatar
func (r *RemoteService) Delete(ctx context.Context, input *avatar.DeleteInput) (*avatar.DeleteOutput, error) {
	if err := r.call(ctx, v1alpha1.MethodDeleteAvatar, v1alpha1.IDRequest{ID: input.ID}, nil); err != nil {
		return nil, err
	}
	return &avatar.DeleteOutput{}, nil
}

// List pages through stored avatars
func (r *RemoteService) List(ctx context.Context, input *avatar.ListInput) (*avatar.ListOutput, error) {
	req := v1alpha1.ListRequest{Limit: input.Limit, Offset: input.Offset}
	var resp v1alpha1.ListResponse
	if err := r.call(ctx, v1alpha1.MethodListAvatars, req, &resp); err != nil {
		return nil, err
	}
	return &avatar.ListOutput{
		Avatars: resp.Avatars,
		Limit:   resp.Limit,
		Offset:  resp.Offset,
		Total:   resp.Total,
	}, nil
}

// NameCandidates forges names on the server
func (r *RemoteService) NameCandidates(ctx context.Context, input *avatar.NameCandidatesInput) (*avatar.NameCandidatesOutput, error) {
	if err := params.CheckSeed(input.Seed); err != nil {
		return nil, err
	}
	req := v1alpha1.NameCandidatesRequest{
		Seed:          input.Seed,
		Archetype:     input.Archetype,
		Traits:        input.Traits,
		Style:         input.Style,
		NameMode:      input.NameMode,
		AllowTitles:   input.AllowTitles,
		AllowEpithets: input.AllowEpithets,
		Candidates:    input.Candidates,
		Limit:         input.Limit,
	}
	var resp v1alpha1.NameCandidatesResponse
	if err := r.call(ctx, v1alpha1.MethodNameCandidates, req, &resp); err != nil {
		return nil, err
	}
	return &avatar.NameCandidatesOutput{Names: resp.Names, Seed: resp.Seed}, nil
}

// Export renders an avatar on the server. The payload comes back as
// generic JSON.
func (r *RemoteService) Export(ctx context.Context, input *avatar.ExportInput) (*avatar.ExportOutput, error) {
	var resp v1alpha1.ExportResponse
	if err := r.call(ctx, v1alpha1.MethodExportAvatar, v1alpha1.ExportRequest{ID: input.ID, Format: input.Format}, &resp); err != nil {
		return nil, err
	}
	return &avatar.ExportOutput{Format: exporters.Format(resp.Format), Payload: resp.Payload}, nil
}

// Catalog fetches the registries
func (r *RemoteService) Catalog(ctx context.Context, _ *avatar.CatalogInput) (*avatar.CatalogOutput, error) {
	var resp avatar.CatalogOutput
	if err := r.call(ctx, v1alpha1.MethodCatalog, struct{}{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
