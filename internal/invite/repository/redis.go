package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	inviteModel "github.com/tbrandt27/football-pick-em-sub003/internal/invite/model"
	"github.com/tbrandt27/football-pick-em-sub003/internal/kvstore"
)

const invitationCollection = "invitations"

type kvRepository struct {
	store *kvstore.Store
}

// NewKV creates a new key-value-backed invitation repository.
func NewKV(store *kvstore.Store) Repository {
	return &kvRepository{store: store}
}

func invitationAttrs(invitation *inviteModel.Invitation) map[string]string {
	return map[string]string{
		"token": invitation.Token,
		"pool":  strconv.FormatUint(uint64(invitation.PoolID), 10),
	}
}

// Create persists a new invitation.
func (r *kvRepository) Create(ctx context.Context, invitation *inviteModel.Invitation) error {
	id, err := r.store.NextID(ctx, invitationCollection)
	if err != nil {
		return err
	}
	invitation.ID = id
	invitation.CreatedAt = time.Now()
	return r.store.Put(ctx, invitationCollection, id, invitation, invitationAttrs(invitation))
}

// GetByID finds an invitation by id.
func (r *kvRepository) GetByID(ctx context.Context, id uint) (*inviteModel.Invitation, error) {
	var invitation inviteModel.Invitation
	if err := r.store.Get(ctx, invitationCollection, id, &invitation); err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, inviteModel.ErrInvitationNotFound
		}
		return nil, err
	}
	return &invitation, nil
}

// GetByToken finds an invitation by its token via the token index.
func (r *kvRepository) GetByToken(ctx context.Context, token string) (*inviteModel.Invitation, error) {
	ids, err := r.store.IDsBy(ctx, invitationCollection, "token", token)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, inviteModel.ErrInvitationNotFound
	}
	return r.GetByID(ctx, ids[0])
}

// ListByPool returns a pool's invitations ordered by id.
func (r *kvRepository) ListByPool(ctx context.Context, poolID uint) ([]inviteModel.Invitation, error) {
	docs, err := r.store.By(ctx, invitationCollection, "pool", strconv.FormatUint(uint64(poolID), 10))
	if err != nil {
		return nil, err
	}
	invitations, err := kvstore.DecodeAll[inviteModel.Invitation](docs)
	if err != nil {
		return nil, err
	}
	sort.Slice(invitations, func(i, j int) bool { return invitations[i].ID < invitations[j].ID })
	return invitations, nil
}

// Update persists changes to an existing invitation.
func (r *kvRepository) Update(ctx context.Context, invitation *inviteModel.Invitation) error {
	invitation.UpdatedAt = time.Now()
	return r.store.Put(ctx, invitationCollection, invitation.ID, invitation, invitationAttrs(invitation))
}
