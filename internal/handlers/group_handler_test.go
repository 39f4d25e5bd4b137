package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "budgetflow/internal/errors"
	"budgetflow/internal/models"
	"budgetflow/internal/services"
)

// --- mock group service ---

type mockGroupService struct {
	createGroupFn   func(creatorID uint, name string, inviteEmails []string) (*models.Group, int, error)
	getUserGroupsFn func(userID uint) ([]models.Group, error)
	getGroupByIDFn  func(userID, groupID uint) (*models.Group, error)
	getMembersFn    func(userID, groupID uint) ([]models.GroupMember, error)
	getRoleFn       func(userID, groupID uint) (*services.RoleInfo, error)
	inviteMembersFn func(actorID, groupID uint, emails []string) (int, error)
	acceptInviteFn  func(userID, groupID uint, token string) (*models.Group, error)
	promoteMemberFn func(actorID, groupID, memberUserID uint) error
	demoteMemberFn  func(actorID, groupID, memberUserID uint) error
	removeMemberFn  func(actorID, groupID, memberUserID uint) error
	leaveGroupFn    func(userID, groupID uint) error
	deleteGroupFn   func(actorID, groupID uint) error
}

func (m *mockGroupService) CreateGroup(creatorID uint, name string, inviteEmails []string) (*models.Group, int, error) {
	if m.createGroupFn != nil {
		return m.createGroupFn(creatorID, name, inviteEmails)
	}
	return &models.Group{}, 0, nil
}

func (m *mockGroupService) GetUserGroups(userID uint) ([]models.Group, error) {
	if m.getUserGroupsFn != nil {
		return m.getUserGroupsFn(userID)
	}
	return []models.Group{}, nil
}

func (m *mockGroupService) GetGroupByID(userID, groupID uint) (*models.Group, error) {
	if m.getGroupByIDFn != nil {
		return m.getGroupByIDFn(userID, groupID)
	}
	return &models.Group{}, nil
}

func (m *mockGroupService) GetMembers(userID, groupID uint) ([]models.GroupMember, error) {
	if m.getMembersFn != nil {
		return m.getMembersFn(userID, groupID)
	}
	return []models.GroupMember{}, nil
}

func (m *mockGroupService) GetRole(userID, groupID uint) (*services.RoleInfo, error) {
	if m.getRoleFn != nil {
		return m.getRoleFn(userID, groupID)
	}
	return &services.RoleInfo{}, nil
}

func (m *mockGroupService) InviteMembers(actorID, groupID uint, emails []string) (int, error) {
	if m.inviteMembersFn != nil {
		return m.inviteMembersFn(actorID, groupID, emails)
	}
	return 0, nil
}

func (m *mockGroupService) AcceptInvite(userID, groupID uint, token string) (*models.Group, error) {
	if m.acceptInviteFn != nil {
		return m.acceptInviteFn(userID, groupID, token)
	}
	return &models.Group{}, nil
}

func (m *mockGroupService) PromoteMember(actorID, groupID, memberUserID uint) error {
	if m.promoteMemberFn != nil {
		return m.promoteMemberFn(actorID, groupID, memberUserID)
	}
	return nil
}

func (m *mockGroupService) DemoteMember(actorID, groupID, memberUserID uint) error {
	if m.demoteMemberFn != nil {
		return m.demoteMemberFn(actorID, groupID, memberUserID)
	}
	return nil
}

func (m *mockGroupService) RemoveMember(actorID, groupID, memberUserID uint) error {
	if m.removeMemberFn != nil {
		return m.removeMemberFn(actorID, groupID, memberUserID)
	}
	return nil
}

func (m *mockGroupService) LeaveGroup(userID, groupID uint) error {
	if m.leaveGroupFn != nil {
		return m.leaveGroupFn(userID, groupID)
	}
	return nil
}

func (m *mockGroupService) DeleteGroup(actorID, groupID uint) error {
	if m.deleteGroupFn != nil {
		return m.deleteGroupFn(actorID, groupID)
	}
	return nil
}

var _ services.GroupServicer = (*mockGroupService)(nil)

func setupGroupRouter(handler *GroupHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.POST("/groups", handler.CreateGroup)
	auth.GET("/groups", handler.GetGroups)
	auth.GET("/groups/:groupId", handler.GetGroup)
	auth.DELETE("/groups/:groupId", handler.DeleteGroup)
	auth.POST("/groups/:groupId/invite", handler.InviteMembers)
	auth.POST("/groups/:groupId/accept-invite", handler.AcceptInvite)
	auth.GET("/groups/:groupId/members", handler.GetMembers)
	auth.GET("/groups/:groupId/my-role", handler.GetMyRole)
	auth.POST("/groups/:groupId/members/:memberId/promote", handler.PromoteMember)
	auth.POST("/groups/:groupId/members/:memberId/demote", handler.DemoteMember)
	auth.DELETE("/groups/:groupId/members/:memberId", handler.RemoveMember)
	auth.POST("/groups/:groupId/leave", handler.LeaveGroup)
	return r
}

func TestGroupHandler_CreateGroup(t *testing.T) {
	t.Run("returns 201 with invite count", func(t *testing.T) {
		groupSvc := &mockGroupService{
			createGroupFn: func(creatorID uint, name string, emails []string) (*models.Group, int, error) {
				if len(emails) != 2 {
					t.Errorf("expected 2 emails, got %d", len(emails))
				}
				return &models.Group{Base: models.Base{ID: 1}, Name: name, CreatedBy: creatorID}, 2, nil
			},
		}
		handler := NewGroupHandler(groupSvc, &mockAuditService{})
		r := setupGroupRouter(handler)

		rec := doRequest(r, "POST", "/groups",
			`{"name":"Trip to Japan","emails":["a@example.com","b@example.com"]}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["invites_sent"].(float64) != 2 {
			t.Errorf("expected invites_sent 2, got %v", result["invites_sent"])
		}
		group := result["group"].(map[string]interface{})
		if group["name"] != "Trip to Japan" {
			t.Errorf("expected name Trip to Japan, got %v", group["name"])
		}
	})

	t.Run("allows creating a group without emails", func(t *testing.T) {
		handler := NewGroupHandler(&mockGroupService{}, &mockAuditService{})
		r := setupGroupRouter(handler)

		rec := doRequest(r, "POST", "/groups", `{"name":"Household"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on missing name", func(t *testing.T) {
		handler := NewGroupHandler(&mockGroupService{}, &mockAuditService{})
		r := setupGroupRouter(handler)

		rec := doRequest(r, "POST", "/groups", `{"emails":["a@example.com"]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestGroupHandler_GetGroup(t *testing.T) {
	t.Run("returns 200 for a member", func(t *testing.T) {
		groupSvc := &mockGroupService{
			getGroupByIDFn: func(_, groupID uint) (*models.Group, error) {
				return &models.Group{Base: models.Base{ID: groupID}, Name: "Household"}, nil
			},
		}
		handler := NewGroupHandler(groupSvc, &mockAuditService{})
		r := setupGroupRouter(handler)

		rec := doRequest(r, "GET", "/groups/3", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("returns 403 for an outsider", func(t *testing.T) {
		groupSvc := &mockGroupService{
			getGroupByIDFn: func(_, _ uint) (*models.Group, error) {
				return nil, apperrors.ErrNotGroupMember
			},
		}
		handler := NewGroupHandler(groupSvc, &mockAuditService{})
		r := setupGroupRouter(handler)

		rec := doRequest(r, "GET", "/groups/3", "")

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "NOT_GROUP_MEMBER")
	})

	t.Run("returns 404 for an unknown group", func(t *testing.T) {
		groupSvc := &mockGroupService{
			getGroupByIDFn: func(_, _ uint) (*models.Group, error) {
				return nil, apperrors.ErrGroupNotFound
			},
		}
		handler := NewGroupHandler(groupSvc, &mockAuditService{})
		r := setupGroupRouter(handler)

		rec := doRequest(r, "GET", "/groups/999", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestGroupHandler_AcceptInvite(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		groupSvc := &mockGroupService{
			acceptInviteFn: func(userID, groupID uint, token string) (*models.Group, error) {
				if token != "sometoken" {
					t.Errorf("expected token passed through, got %q", token)
				}
				if groupID != 2 {
					t.Errorf("expected group ID 2 from path, got %d", groupID)
				}
				return &models.Group{Base: models.Base{ID: 2}, Name: "Household"}, nil
			},
		}
		handler := NewGroupHandler(groupSvc, &mockAuditService{})
		r := setupGroupRouter(handler)

		rec := doRequest(r, "POST", "/groups/2/accept-invite", `{"token":"sometoken"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 404 on bad token", func(t *testing.T) {
		groupSvc := &mockGroupService{
			acceptInviteFn: func(_, _ uint, _ string) (*models.Group, error) {
				return nil, apperrors.ErrInviteNotFound
			},
		}
		handler := NewGroupHandler(groupSvc, &mockAuditService{})
		r := setupGroupRouter(handler)

		rec := doRequest(r, "POST", "/groups/2/accept-invite", `{"token":"bad"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVITE_NOT_FOUND")
	})

	t.Run("returns 409 on expired invite", func(t *testing.T) {
		groupSvc := &mockGroupService{
			acceptInviteFn: func(_, _ uint, _ string) (*models.Group, error) {
				return nil, apperrors.ErrInviteExpired
			},
		}
		handler := NewGroupHandler(groupSvc, &mockAuditService{})
		r := setupGroupRouter(handler)

		rec := doRequest(r, "POST", "/groups/2/accept-invite", `{"token":"old"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
	})

	t.Run("returns 409 when already a member", func(t *testing.T) {
		groupSvc := &mockGroupService{
			acceptInviteFn: func(_, _ uint, _ string) (*models.Group, error) {
				return nil, apperrors.ErrAlreadyMember
			},
		}
		handler := NewGroupHandler(groupSvc, &mockAuditService{})
		r := setupGroupRouter(handler)

		rec := doRequest(r, "POST", "/groups/2/accept-invite", `{"token":"dup"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "ALREADY_MEMBER")
	})

	t.Run("returns 400 on missing token", func(t *testing.T) {
		handler := NewGroupHandler(&mockGroupService{}, &mockAuditService{})
		r := setupGroupRouter(handler)

		rec := doRequest(r, "POST", "/groups/2/accept-invite", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestGroupHandler_GetMembers(t *testing.T) {
	t.Run("returns members with caller admin flag", func(t *testing.T) {
		groupSvc := &mockGroupService{
			getMembersFn: func(_, _ uint) ([]models.GroupMember, error) {
				return []models.GroupMember{
					{GroupID: 1, UserID: 1, Role: models.RoleAdmin},
					{GroupID: 1, UserID: 2, Role: models.RoleMember},
				}, nil
			},
			getRoleFn: func(_, _ uint) (*services.RoleInfo, error) {
				return &services.RoleInfo{Role: models.RoleAdmin, IsMember: true, IsAdmin: true}, nil
			},
		}
		handler := NewGroupHandler(groupSvc, &mockAuditService{})
		r := setupGroupRouter(handler)

		rec := doRequest(r, "GET", "/groups/1/members", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		members := result["members"].([]interface{})
		if len(members) != 2 {
			t.Errorf("expected 2 members, got %d", len(members))
		}
		if result["is_admin"] != true {
			t.Errorf("expected is_admin true, got %v", result["is_admin"])
		}
	})
}

func TestGroupHandler_GetMyRole(t *testing.T) {
	t.Run("returns role flags", func(t *testing.T) {
		groupSvc := &mockGroupService{
			getRoleFn: func(_, _ uint) (*services.RoleInfo, error) {
				return &services.RoleInfo{Role: models.RoleMember, IsMember: true, IsAdmin: false, IsCreator: false}, nil
			},
		}
		handler := NewGroupHandler(groupSvc, &mockAuditService{})
		r := setupGroupRouter(handler)

		rec := doRequest(r, "GET", "/groups/1/my-role", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["is_member"] != true {
			t.Errorf("expected is_member true, got %v", result["is_member"])
		}
		if result["is_admin"] != false {
			t.Errorf("expected is_admin false, got %v", result["is_admin"])
		}
	})

	t.Run("returns zero flags for a non-member", func(t *testing.T) {
		groupSvc := &mockGroupService{
			getRoleFn: func(_, _ uint) (*services.RoleInfo, error) {
				return &services.RoleInfo{}, nil
			},
		}
		handler := NewGroupHandler(groupSvc, &mockAuditService{})
		r := setupGroupRouter(handler)

		rec := doRequest(r, "GET", "/groups/1/my-role", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["is_member"] != false {
			t.Errorf("expected is_member false, got %v", result["is_member"])
		}
	})
}

func TestGroupHandler_PromoteDemote(t *testing.T) {
	t.Run("promote returns 200", func(t *testing.T) {
		var captured [3]uint
		groupSvc := &mockGroupService{
			promoteMemberFn: func(actorID, groupID, memberID uint) error {
				captured = [3]uint{actorID, groupID, memberID}
				return nil
			},
		}
		handler := NewGroupHandler(groupSvc, &mockAuditService{})
		r := setupGroupRouter(handler)

		rec := doRequest(r, "POST", "/groups/2/members/5/promote", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if captured != [3]uint{1, 2, 5} {
			t.Errorf("expected (1,2,5), got %v", captured)
		}
	})

	t.Run("promote returns 409 when already admin", func(t *testing.T) {
		groupSvc := &mockGroupService{
			promoteMemberFn: func(_, _, _ uint) error {
				return apperrors.ErrAlreadyAdmin
			},
		}
		handler := NewGroupHandler(groupSvc, &mockAuditService{})
		r := setupGroupRouter(handler)

		rec := doRequest(r, "POST", "/groups/2/members/5/promote", "")

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "ALREADY_ADMIN")
	})

	t.Run("demote returns 409 for the creator", func(t *testing.T) {
		groupSvc := &mockGroupService{
			demoteMemberFn: func(_, _, _ uint) error {
				return apperrors.ErrCannotDemoteCreator
			},
		}
		handler := NewGroupHandler(groupSvc, &mockAuditService{})
		r := setupGroupRouter(handler)

		rec := doRequest(r, "POST", "/groups/2/members/5/demote", "")

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CANNOT_DEMOTE_CREATOR")
	})

	t.Run("promote returns 403 for non-admin", func(t *testing.T) {
		groupSvc := &mockGroupService{
			promoteMemberFn: func(_, _, _ uint) error {
				return apperrors.ErrAdminRequired
			},
		}
		handler := NewGroupHandler(groupSvc, &mockAuditService{})
		r := setupGroupRouter(handler)

		rec := doRequest(r, "POST", "/groups/2/members/5/promote", "")

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})

	t.Run("promote returns 400 on invalid member ID", func(t *testing.T) {
		handler := NewGroupHandler(&mockGroupService{}, &mockAuditService{})
		r := setupGroupRouter(handler)

		rec := doRequest(r, "POST", "/groups/2/members/abc/promote", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestGroupHandler_RemoveMember(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		handler := NewGroupHandler(&mockGroupService{}, &mockAuditService{})
		r := setupGroupRouter(handler)

		rec := doRequest(r, "DELETE", "/groups/2/members/5", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on self-removal", func(t *testing.T) {
		groupSvc := &mockGroupService{
			removeMemberFn: func(_, _, _ uint) error {
				return apperrors.ErrCannotRemoveSelf
			},
		}
		handler := NewGroupHandler(groupSvc, &mockAuditService{})
		r := setupGroupRouter(handler)

		rec := doRequest(r, "DELETE", "/groups/2/members/1", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CANNOT_REMOVE_SELF")
	})
}

func TestGroupHandler_LeaveGroup(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		handler := NewGroupHandler(&mockGroupService{}, &mockAuditService{})
		r := setupGroupRouter(handler)

		rec := doRequest(r, "POST", "/groups/2/leave", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("returns 400 when the creator tries to leave", func(t *testing.T) {
		groupSvc := &mockGroupService{
			leaveGroupFn: func(_, _ uint) error {
				return apperrors.ErrCreatorCannotLeave
			},
		}
		handler := NewGroupHandler(groupSvc, &mockAuditService{})
		r := setupGroupRouter(handler)

		rec := doRequest(r, "POST", "/groups/2/leave", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CREATOR_CANNOT_LEAVE")
	})
}

func TestGroupHandler_DeleteGroup(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		handler := NewGroupHandler(&mockGroupService{}, &mockAuditService{})
		r := setupGroupRouter(handler)

		rec := doRequest(r, "DELETE", "/groups/2", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("returns 403 for a non-creator admin", func(t *testing.T) {
		groupSvc := &mockGroupService{
			deleteGroupFn: func(_, _ uint) error {
				return apperrors.ErrCreatorOnly
			},
		}
		handler := NewGroupHandler(groupSvc, &mockAuditService{})
		r := setupGroupRouter(handler)

		rec := doRequest(r, "DELETE", "/groups/2", "")

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CREATOR_ONLY")
	})
}

func TestGroupHandler_InviteMembers(t *testing.T) {
	t.Run("returns 200 with invite count", func(t *testing.T) {
		groupSvc := &mockGroupService{
			inviteMembersFn: func(_, _ uint, emails []string) (int, error) {
				return len(emails), nil
			},
		}
		handler := NewGroupHandler(groupSvc, &mockAuditService{})
		r := setupGroupRouter(handler)

		rec := doRequest(r, "POST", "/groups/2/invite", `{"emails":["x@example.com","y@example.com"]}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["invites_sent"].(float64) != 2 {
			t.Errorf("expected invites_sent 2, got %v", result["invites_sent"])
		}
	})

	t.Run("returns 400 on empty email list", func(t *testing.T) {
		handler := NewGroupHandler(&mockGroupService{}, &mockAuditService{})
		r := setupGroupRouter(handler)

		rec := doRequest(r, "POST", "/groups/2/invite", `{"emails":[]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 403 for a plain member", func(t *testing.T) {
		groupSvc := &mockGroupService{
			inviteMembersFn: func(_, _ uint, _ []string) (int, error) {
				return 0, apperrors.ErrAdminRequired
			},
		}
		handler := NewGroupHandler(groupSvc, &mockAuditService{})
		r := setupGroupRouter(handler)

		rec := doRequest(r, "POST", "/groups/2/invite", `{"emails":["x@example.com"]}`)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})
}
