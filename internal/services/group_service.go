package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "budgetflow/internal/errors"
	"budgetflow/internal/logger"
	"budgetflow/internal/mail"
	"budgetflow/internal/models"
)

const inviteValidity = 7 * 24 * time.Hour

// groupService handles group and membership business logic.
type groupService struct {
	db          *gorm.DB
	mailer      mail.Mailer
	frontendURL string
}

// NewGroupService creates a new GroupServicer.
func NewGroupService(db *gorm.DB, mailer mail.Mailer, frontendURL string) GroupServicer {
	return &groupService{db: db, mailer: mailer, frontendURL: frontendURL}
}

// CreateGroup creates a group with the creator as an active admin member
// and issues pending invites for every plausible email. The returned int
// is the number of invites issued. Invite mail goes out asynchronously
// after commit; delivery failure never fails the operation.
func (s *groupService) CreateGroup(creatorID uint, name string, inviteEmails []string) (*models.Group, int, error) {
	if strings.TrimSpace(name) == "" {
		return nil, 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "group name is required")
	}

	group := &models.Group{Name: strings.TrimSpace(name), CreatedBy: creatorID}
	var invites []models.GroupInvite

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		member := &models.GroupMember{
			GroupID: group.ID,
			UserID:  creatorID,
			Role:    models.RoleAdmin,
			Status:  models.MemberStatusActive,
		}
		if err := tx.Create(member).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		var err error
		invites, err = s.createInvites(tx, group.ID, inviteEmails)
		return err
	})
	if err != nil {
		return nil, 0, err
	}

	s.dispatchInviteMail(group, invites)
	return group, len(invites), nil
}

// createInvites inserts pending invite rows for every plausible email,
// skipping blanks and duplicates within the batch.
func (s *groupService) createInvites(tx *gorm.DB, groupID uint, emails []string) ([]models.GroupInvite, error) {
	seen := make(map[string]bool)
	var invites []models.GroupInvite

	for _, raw := range emails {
		email := strings.ToLower(strings.TrimSpace(raw))
		if email == "" || !strings.Contains(email, "@") || seen[email] {
			continue
		}
		seen[email] = true

		token, err := generateInviteToken()
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		invite := models.GroupInvite{
			GroupID:   groupID,
			Email:     email,
			Token:     token,
			Status:    models.InviteStatusPending,
			InvitedAt: time.Now(),
			ExpiresAt: time.Now().Add(inviteValidity),
		}
		if err := tx.Create(&invite).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		invites = append(invites, invite)
	}

	return invites, nil
}

// dispatchInviteMail sends invite emails in the background.
func (s *groupService) dispatchInviteMail(group *models.Group, invites []models.GroupInvite) {
	if len(invites) == 0 {
		return
	}
	go func() {
		for _, invite := range invites {
			link := fmt.Sprintf("%s/join-group?token=%s", s.frontendURL, invite.Token)
			if err := s.mailer.SendInvite(invite.Email, group.Name, link); err != nil {
				logger.Get().Errorw("failed to send invite email",
					"error", err,
					"group_id", group.ID,
					"email", invite.Email,
				)
			}
		}
	}()
}

// generateInviteToken returns 32 random bytes hex-encoded (64 chars).
func generateInviteToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// GetUserGroups lists all groups where the user is an active member.
func (s *groupService) GetUserGroups(userID uint) ([]models.Group, error) {
	var groups []models.Group
	err := s.db.
		Joins("JOIN group_members ON group_members.group_id = groups.id").
		Where("group_members.user_id = ? AND group_members.status = ?", userID, models.MemberStatusActive).
		Preload("Members").
		Preload("Members.User").
		Find(&groups).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return groups, nil
}

// GetGroupByID retrieves a group with its members. The caller must be an
// active member.
func (s *groupService) GetGroupByID(userID, groupID uint) (*models.Group, error) {
	role, err := s.GetRole(userID, groupID)
	if err != nil {
		return nil, err
	}
	if !role.IsMember {
		return nil, apperrors.ErrNotGroupMember
	}

	var group models.Group
	if err := s.db.Preload("Members").Preload("Members.User").First(&group, groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &group, nil
}

// GetMembers lists a group's active members. The caller must be a member.
func (s *groupService) GetMembers(userID, groupID uint) ([]models.GroupMember, error) {
	group, err := s.GetGroupByID(userID, groupID)
	if err != nil {
		return nil, err
	}
	return group.Members, nil
}

// GetRole reports the caller's standing in a group. A non-member gets a
// zero RoleInfo rather than an error so callers can distinguish guard
// failures from lookup failures. The creator counts as admin regardless
// of the role column.
func (s *groupService) GetRole(userID, groupID uint) (*RoleInfo, error) {
	var group models.Group
	if err := s.db.First(&group, groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var member models.GroupMember
	err := s.db.Where("group_id = ? AND user_id = ? AND status = ?",
		groupID, userID, models.MemberStatusActive).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &RoleInfo{}, nil
	} else if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	isCreator := group.CreatedBy == userID
	return &RoleInfo{
		Role:      member.Role,
		IsMember:  true,
		IsAdmin:   member.Role == models.RoleAdmin || isCreator,
		IsCreator: isCreator,
	}, nil
}

// InviteMembers issues pending invites for a batch of emails. The caller
// must be a group admin. Returns the number of invites issued.
func (s *groupService) InviteMembers(actorID, groupID uint, emails []string) (int, error) {
	role, err := s.GetRole(actorID, groupID)
	if err != nil {
		return 0, err
	}
	if !role.IsMember {
		return 0, apperrors.ErrNotGroupMember
	}
	if !role.IsAdmin {
		return 0, apperrors.ErrAdminRequired
	}

	var group models.Group
	if err := s.db.First(&group, groupID).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var invites []models.GroupInvite
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		invites, txErr = s.createInvites(tx, groupID, emails)
		return txErr
	})
	if err != nil {
		return 0, err
	}

	s.dispatchInviteMail(&group, invites)
	return len(invites), nil
}

// AcceptInvite redeems an invite token for the calling user. The token
// must belong to the addressed group. Redemption is one-shot: the
// pending-to-accepted flip is a conditional update, so two concurrent
// accepts of the same token cannot both succeed.
func (s *groupService) AcceptInvite(userID, groupID uint, token string) (*models.Group, error) {
	if token == "" {
		return nil, apperrors.ErrInviteNotFound
	}

	var group models.Group
	if err := s.db.First(&group, groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var invite models.GroupInvite
	if err := s.db.Where("group_id = ? AND token = ?", groupID, token).First(&invite).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInviteNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if invite.Status != models.InviteStatusPending {
		return nil, apperrors.ErrInviteNotFound
	}
	if time.Now().After(invite.ExpiresAt) {
		return nil, apperrors.ErrInviteExpired
	}

	var existing int64
	if err := s.db.Model(&models.GroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&existing).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if existing > 0 {
		return nil, apperrors.ErrAlreadyMember
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.GroupInvite{}).
			Where("id = ? AND status = ?", invite.ID, models.InviteStatusPending).
			Update("status", models.InviteStatusAccepted)
		if res.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
		}
		if res.RowsAffected == 0 {
			// Lost the race to another accept of the same token.
			return apperrors.ErrInviteNotFound
		}

		member := &models.GroupMember{
			GroupID: invite.GroupID,
			UserID:  userID,
			Role:    models.RoleMember,
			Status:  models.MemberStatusActive,
		}
		if err := tx.Create(member).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var joined models.Group
	if err := s.db.Preload("Members").Preload("Members.User").First(&joined, groupID).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &joined, nil
}

// PromoteMember promotes a regular member to admin. The caller must be a
// group admin. The role flip is a conditional single-row update so a
// concurrent promote cannot double-apply.
func (s *groupService) PromoteMember(actorID, groupID, memberUserID uint) error {
	if err := s.requireAdmin(actorID, groupID); err != nil {
		return err
	}

	if _, err := s.findMember(groupID, memberUserID); err != nil {
		return err
	}

	res := s.db.Model(&models.GroupMember{}).
		Where("group_id = ? AND user_id = ? AND role = ?", groupID, memberUserID, models.RoleMember).
		Update("role", models.RoleAdmin)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrAlreadyAdmin
	}
	return nil
}

// DemoteMember demotes an admin back to regular member. The caller must
// be a group admin and the creator can never be demoted.
func (s *groupService) DemoteMember(actorID, groupID, memberUserID uint) error {
	if err := s.requireAdmin(actorID, groupID); err != nil {
		return err
	}

	var group models.Group
	if err := s.db.First(&group, groupID).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if group.CreatedBy == memberUserID {
		return apperrors.ErrCannotDemoteCreator
	}

	if _, err := s.findMember(groupID, memberUserID); err != nil {
		return err
	}

	res := s.db.Model(&models.GroupMember{}).
		Where("group_id = ? AND user_id = ? AND role = ?", groupID, memberUserID, models.RoleAdmin).
		Update("role", models.RoleMember)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrAlreadyPlainMember
	}
	return nil
}

// RemoveMember removes another member from the group. The caller must be
// a group admin, cannot remove themselves, and cannot remove the creator.
func (s *groupService) RemoveMember(actorID, groupID, memberUserID uint) error {
	if err := s.requireAdmin(actorID, groupID); err != nil {
		return err
	}
	if actorID == memberUserID {
		return apperrors.ErrCannotRemoveSelf
	}

	var group models.Group
	if err := s.db.First(&group, groupID).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if group.CreatedBy == memberUserID {
		return apperrors.WithMessage(apperrors.ErrCannotDemoteCreator, "Cannot remove the group creator")
	}

	member, err := s.findMember(groupID, memberUserID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(member).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// LeaveGroup removes the calling user's own membership. The creator must
// delete the group instead.
func (s *groupService) LeaveGroup(userID, groupID uint) error {
	var group models.Group
	if err := s.db.First(&group, groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrGroupNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if group.CreatedBy == userID {
		return apperrors.ErrCreatorCannotLeave
	}

	member, err := s.findMember(groupID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrMemberNotFound) {
			return apperrors.ErrNotGroupMember
		}
		return err
	}

	if err := s.db.Delete(member).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// DeleteGroup deletes a group with all of its members, invites, budgets
// and transactions in one database transaction. Creator only; an admin
// who is not the creator cannot delete the group.
func (s *groupService) DeleteGroup(actorID, groupID uint) error {
	var group models.Group
	if err := s.db.First(&group, groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrGroupNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if group.CreatedBy != actorID {
		return apperrors.ErrCreatorOnly
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", groupID).Delete(&models.Transaction{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Where("group_id = ?", groupID).Delete(&models.Budget{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Where("group_id = ?", groupID).Delete(&models.GroupInvite{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Where("group_id = ?", groupID).Delete(&models.GroupMember{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(&models.Group{}, groupID).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// requireAdmin verifies the actor is an active admin of the group.
func (s *groupService) requireAdmin(actorID, groupID uint) error {
	role, err := s.GetRole(actorID, groupID)
	if err != nil {
		return err
	}
	if !role.IsMember {
		return apperrors.ErrNotGroupMember
	}
	if !role.IsAdmin {
		return apperrors.ErrAdminRequired
	}
	return nil
}

// findMember loads an active membership row.
func (s *groupService) findMember(groupID, userID uint) (*models.GroupMember, error) {
	var member models.GroupMember
	err := s.db.Where("group_id = ? AND user_id = ? AND status = ?",
		groupID, userID, models.MemberStatusActive).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrMemberNotFound
	} else if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &member, nil
}
