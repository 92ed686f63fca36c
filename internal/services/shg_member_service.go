package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Manjunath2731/navayugasystmebackend-new/internal/models"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/repositories"
)

type SHGMemberService struct {
	members *repositories.SHGMemberRepository
	shgs    *repositories.SHGRepository
}

func NewSHGMemberService(members *repositories.SHGMemberRepository, shgs *repositories.SHGRepository) *SHGMemberService {
	return &SHGMemberService{members: members, shgs: shgs}
}

func (s *SHGMemberService) Create(ctx context.Context, req *models.CreateSHGMemberRequest) (*models.SHGMember, error) {
	if req.Name == "" {
		return nil, errors.New("member name is required")
	}
	role := req.Role
	if role == "" {
		role = models.MemberRoleMember
	}
	if !models.ValidMemberRole(role) {
		return nil, fmt.Errorf("invalid member role: %s", role)
	}

	if _, err := s.shgs.Get(ctx, req.SHGID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("shg %d not found", req.SHGID)
		}
		return nil, err
	}

	member := &models.SHGMember{
		SHGID:               req.SHGID,
		Name:                req.Name,
		PhoneNumber:         req.PhoneNumber,
		Role:                role,
		AadharCardFront:     req.AadharCardFront,
		AadharCardBack:      req.AadharCardBack,
		PanCard:             req.PanCard,
		VoterIDCard:         req.VoterIDCard,
		HomeRentalAgreement: req.HomeRentalAgreement,
	}
	if err := s.members.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *SHGMemberService) Get(ctx context.Context, id int) (*models.SHGMember, error) {
	return s.members.Get(ctx, id)
}

func (s *SHGMemberService) ListBySHG(ctx context.Context, shgID int) ([]*models.SHGMember, error) {
	members, err := s.members.ListBySHG(ctx, shgID)
	if err != nil {
		return nil, err
	}
	if members == nil {
		members = []*models.SHGMember{}
	}
	return members, nil
}

func (s *SHGMemberService) Update(ctx context.Context, id int, req *models.UpdateSHGMemberRequest) (*models.SHGMember, error) {
	member, err := s.members.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.PhoneNumber != nil {
		member.PhoneNumber = *req.PhoneNumber
	}
	if req.Role != nil {
		if !models.ValidMemberRole(*req.Role) {
			return nil, fmt.Errorf("invalid member role: %s", *req.Role)
		}
		member.Role = *req.Role
	}
	if req.AadharCardFront != nil {
		member.AadharCardFront = *req.AadharCardFront
	}
	if req.AadharCardBack != nil {
		member.AadharCardBack = *req.AadharCardBack
	}
	if req.PanCard != nil {
		member.PanCard = *req.PanCard
	}
	if req.VoterIDCard != nil {
		member.VoterIDCard = *req.VoterIDCard
	}
	if req.HomeRentalAgreement != nil {
		member.HomeRentalAgreement = *req.HomeRentalAgreement
	}

	if err := s.members.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// Delete removes a member directly. Only owners may do this; front desk
// staff go through delete tickets.
func (s *SHGMemberService) Delete(ctx context.Context, id int, callerRole string) error {
	if callerRole != models.RoleOwner {
		return errors.New("only owners can delete members directly, create a delete ticket instead")
	}
	return s.members.Delete(ctx, id)
}
