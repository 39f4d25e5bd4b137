package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgetflow/internal/errors"
	"budgetflow/internal/services"
)

// GroupHandler handles group and membership requests.
type GroupHandler struct {
	groupService services.GroupServicer
	auditService services.AuditServicer
}

// NewGroupHandler creates a new GroupHandler.
func NewGroupHandler(groupService services.GroupServicer, auditService services.AuditServicer) *GroupHandler {
	return &GroupHandler{groupService: groupService, auditService: auditService}
}

// CreateGroupRequest represents the request payload for creating a group
type CreateGroupRequest struct {
	Name   string   `json:"name" binding:"required,max=100"`
	Emails []string `json:"emails"`
}

// InviteMembersRequest represents the request payload for inviting members
type InviteMembersRequest struct {
	Emails []string `json:"emails" binding:"required,min=1"`
}

// AcceptInviteRequest represents the request payload for redeeming an invite
type AcceptInviteRequest struct {
	Token string `json:"token" binding:"required"`
}

// CreateGroup handles the creation of a new group
// @Summary     Create a group
// @Description Create a group with the caller as its admin creator. Plausible email addresses in the payload receive pending invites by mail.
// @Tags        groups
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateGroupRequest true "Group name and optional invite emails"
// @Success     201 {object} models.Group "Group created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /groups [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	group, invitesSent, err := h.groupService.CreateGroup(userID, req.Name, req.Emails)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_GROUP", "group", group.ID, c.ClientIP(),
		map[string]interface{}{"name": group.Name, "invites_sent": invitesSent})

	c.JSON(http.StatusCreated, gin.H{
		"group":        group,
		"invites_sent": invitesSent,
	})
}

// GetGroups handles the retrieval of the caller's groups
// @Summary     Get groups
// @Description Get all groups the authenticated user is an active member of
// @Tags        groups
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Group "Groups"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /groups [get]
func (h *GroupHandler) GetGroups(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	groups, err := h.groupService.GetUserGroups(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// GetGroup handles the retrieval of a single group
// @Summary     Get group by ID
// @Description Get a group's details including its member list (members only)
// @Tags        groups
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       groupId path int true "Group ID"
// @Success     200 {object} models.Group "Group details"
// @Failure     400 {object} ErrorResponse "Invalid group ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not a group member"
// @Failure     404 {object} ErrorResponse "Group not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /groups/{groupId} [get]
func (h *GroupHandler) GetGroup(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	groupID, err := parsePathID(c, "groupId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	group, err := h.groupService.GetGroupByID(userID, groupID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"group": group})
}

// InviteMembers handles inviting new members to a group
// @Summary     Invite members
// @Description Send email invites to join a group (admins only). Returns the number of invites attempted.
// @Tags        groups
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       groupId path int                  true "Group ID"
// @Param       request body InviteMembersRequest true "Email addresses to invite"
// @Success     200 {object} MessageResponse "Invites sent"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Admin role required"
// @Failure     404 {object} ErrorResponse "Group not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /groups/{groupId}/invite [post]
func (h *GroupHandler) InviteMembers(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	groupID, err := parsePathID(c, "groupId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req InviteMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	invitesSent, err := h.groupService.InviteMembers(userID, groupID, req.Emails)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "INVITE_MEMBERS", "group", groupID, c.ClientIP(),
		map[string]interface{}{"invites_sent": invitesSent})

	c.JSON(http.StatusOK, gin.H{"invites_sent": invitesSent})
}

// AcceptInvite handles invite redemption
// @Summary     Accept a group invite
// @Description Redeem an invite token to join a group as a plain member. Tokens are one-shot and expire seven days after issuance.
// @Tags        groups
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       groupId path int                 true "Group ID"
// @Param       request body AcceptInviteRequest true "Invite token"
// @Success     200 {object} models.Group "Joined group"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Group not found or invalid invite token"
// @Failure     409 {object} ErrorResponse "Invite expired or already a member"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /groups/{groupId}/accept-invite [post]
func (h *GroupHandler) AcceptInvite(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	groupID, err := parsePathID(c, "groupId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AcceptInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	group, err := h.groupService.AcceptInvite(userID, groupID, req.Token)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "ACCEPT_INVITE", "group", group.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"group": group})
}

// GetMembers handles the retrieval of a group's member list
// @Summary     Get group members
// @Description Get a group's members with their roles, plus the caller's own standing (members only)
// @Tags        groups
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       groupId path int true "Group ID"
// @Success     200 {array} models.GroupMember "Members"
// @Failure     400 {object} ErrorResponse "Invalid group ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not a group member"
// @Failure     404 {object} ErrorResponse "Group not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /groups/{groupId}/members [get]
func (h *GroupHandler) GetMembers(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	groupID, err := parsePathID(c, "groupId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	members, err := h.groupService.GetMembers(userID, groupID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	role, err := h.groupService.GetRole(userID, groupID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"members":  members,
		"is_admin": role.IsAdmin,
	})
}

// GetMyRole handles the retrieval of the caller's standing in a group
// @Summary     Get my role
// @Description Get the caller's role flags within a group. Non-members get all flags false instead of an error.
// @Tags        groups
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       groupId path int true "Group ID"
// @Success     200 {object} services.RoleInfo "Role flags"
// @Failure     400 {object} ErrorResponse "Invalid group ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Group not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /groups/{groupId}/my-role [get]
func (h *GroupHandler) GetMyRole(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	groupID, err := parsePathID(c, "groupId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	role, err := h.groupService.GetRole(userID, groupID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, role)
}

// PromoteMember handles promoting a member to admin
// @Summary     Promote member
// @Description Promote a plain member to admin (admins only)
// @Tags        groups
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       groupId  path int true "Group ID"
// @Param       memberId path int true "Member's user ID"
// @Success     200 {object} MessageResponse "Member promoted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Admin role required"
// @Failure     404 {object} ErrorResponse "Member not found"
// @Failure     409 {object} ErrorResponse "Member is already an admin"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /groups/{groupId}/members/{memberId}/promote [post]
func (h *GroupHandler) PromoteMember(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	groupID, err := parsePathID(c, "groupId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	memberID, err := parsePathID(c, "memberId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.groupService.PromoteMember(userID, groupID, memberID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "PROMOTE_MEMBER", "group", groupID, c.ClientIP(),
		map[string]interface{}{"member_id": memberID})

	c.JSON(http.StatusOK, gin.H{"message": "Member promoted to admin"})
}

// DemoteMember handles demoting an admin to plain member
// @Summary     Demote member
// @Description Demote an admin to plain member (admins only). The group creator cannot be demoted.
// @Tags        groups
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       groupId  path int true "Group ID"
// @Param       memberId path int true "Member's user ID"
// @Success     200 {object} MessageResponse "Member demoted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Admin role required"
// @Failure     404 {object} ErrorResponse "Member not found"
// @Failure     409 {object} ErrorResponse "Member is not an admin or is the creator"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /groups/{groupId}/members/{memberId}/demote [post]
func (h *GroupHandler) DemoteMember(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	groupID, err := parsePathID(c, "groupId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	memberID, err := parsePathID(c, "memberId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.groupService.DemoteMember(userID, groupID, memberID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DEMOTE_MEMBER", "group", groupID, c.ClientIP(),
		map[string]interface{}{"member_id": memberID})

	c.JSON(http.StatusOK, gin.H{"message": "Member demoted to member"})
}

// RemoveMember handles removing a member from a group
// @Summary     Remove member
// @Description Remove a member from a group (admins only). Admins cannot remove themselves or the creator.
// @Tags        groups
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       groupId  path int true "Group ID"
// @Param       memberId path int true "Member's user ID"
// @Success     200 {object} MessageResponse "Member removed"
// @Failure     400 {object} ErrorResponse "Invalid ID or self-removal"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Admin role required"
// @Failure     404 {object} ErrorResponse "Member not found"
// @Failure     409 {object} ErrorResponse "Cannot remove the group creator"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /groups/{groupId}/members/{memberId} [delete]
func (h *GroupHandler) RemoveMember(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	groupID, err := parsePathID(c, "groupId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	memberID, err := parsePathID(c, "memberId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.groupService.RemoveMember(userID, groupID, memberID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "REMOVE_MEMBER", "group", groupID, c.ClientIP(),
		map[string]interface{}{"member_id": memberID})

	c.JSON(http.StatusOK, gin.H{"message": "Member removed from group"})
}

// LeaveGroup handles a member leaving a group
// @Summary     Leave group
// @Description Leave a group the caller is a member of. The creator cannot leave their own group.
// @Tags        groups
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       groupId path int true "Group ID"
// @Success     200 {object} MessageResponse "Left group"
// @Failure     400 {object} ErrorResponse "Creator cannot leave"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not a group member"
// @Failure     404 {object} ErrorResponse "Group not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /groups/{groupId}/leave [post]
func (h *GroupHandler) LeaveGroup(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	groupID, err := parsePathID(c, "groupId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.groupService.LeaveGroup(userID, groupID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "LEAVE_GROUP", "group", groupID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Left group successfully"})
}

// DeleteGroup handles the deletion of a group
// @Summary     Delete group
// @Description Delete a group and all its transactions, budgets, invites, and memberships. Only the creator can delete a group.
// @Tags        groups
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       groupId path int true "Group ID"
// @Success     200 {object} MessageResponse "Group deleted"
// @Failure     400 {object} ErrorResponse "Invalid group ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Only the creator can delete a group"
// @Failure     404 {object} ErrorResponse "Group not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /groups/{groupId} [delete]
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	groupID, err := parsePathID(c, "groupId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.groupService.DeleteGroup(userID, groupID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_GROUP", "group", groupID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Group deleted successfully"})
}
