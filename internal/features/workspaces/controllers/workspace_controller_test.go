package workspaces_controllers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	posts_dto "planboard-backend/internal/features/posts/dto"
	posts_enums "planboard-backend/internal/features/posts/enums"
	posts_services "planboard-backend/internal/features/posts/services"
	users_enums "planboard-backend/internal/features/users/enums"
	users_testing "planboard-backend/internal/features/users/testing"
	workspaces_dto "planboard-backend/internal/features/workspaces/dto"
	workspaces_testing "planboard-backend/internal/features/workspaces/testing"
	test_utils "planboard-backend/internal/util/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CreateWorkspace_ReturnsCreatedWorkspace(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)

	uniqueID := uuid.New().String()[:8]
	request := workspaces_dto.CreateWorkspaceRequestDTO{
		Name:       "Spring Campaign " + uniqueID,
		ClientName: "Acme Inc",
	}

	var response workspaces_dto.WorkspaceResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/workspaces",
		"Bearer "+user.Token,
		request,
		http.StatusCreated,
		&response,
	)

	assert.NotEqual(t, uuid.Nil, response.ID)
	assert.Equal(t, request.Name, response.Name)
	assert.Equal(t, request.ClientName, response.ClientName)
	assert.Nil(t, response.ShareToken)
	assert.Zero(t, response.PostCount)
}

func Test_CreateWorkspace_WithoutClientName_ReturnsBadRequest(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/workspaces",
		"Bearer "+user.Token,
		map[string]string{"name": "No Client"},
		http.StatusBadRequest,
	)

	assert.Contains(t, string(resp.Body), "Invalid request format")
}

func Test_CreateWorkspace_WithoutAuthToken_ReturnsUnauthorized(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/workspaces",
		"",
		workspaces_dto.CreateWorkspaceRequestDTO{Name: "W", ClientName: "C"},
		http.StatusUnauthorized,
	)
}

func Test_GetWorkspaces_NewestFirstWithPostCounts(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)

	older := workspaces_testing.CreateTestWorkspace("Older "+uuid.New().String()[:8], "Acme Inc", user.User)
	newer := workspaces_testing.CreateTestWorkspace("Newer "+uuid.New().String()[:8], "Acme Inc", user.User)

	for day := 1; day <= 3; day++ {
		_, err := posts_services.GetPostService().UpsertPost(&posts_dto.UpsertPostRequestDTO{
			WorkspaceID: newer.ID,
			Date:        time.Date(2024, 7, day, 0, 0, 0, 0, time.UTC),
			Description: "Scheduled post",
		}, user.User)
		require.NoError(t, err)
	}

	var response workspaces_dto.ListWorkspacesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/workspaces",
		"Bearer "+user.Token,
		http.StatusOK,
		&response,
	)

	olderIndex, newerIndex := -1, -1
	for i, workspace := range response.Workspaces {
		switch workspace.ID {
		case older.ID:
			olderIndex = i
			assert.Equal(t, int64(0), workspace.PostCount)
		case newer.ID:
			newerIndex = i
			assert.Equal(t, int64(3), workspace.PostCount)
		}
	}

	require.NotEqual(t, -1, olderIndex)
	require.NotEqual(t, -1, newerIndex)
	assert.Less(t, newerIndex, olderIndex)
}

func Test_GetWorkspace_UnknownIDReturnsNotFound(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)

	test_utils.MakeGetRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/workspaces/%s", uuid.New()),
		"Bearer "+user.Token,
		http.StatusNotFound,
	)
}

func Test_GetWorkspace_MalformedIDReturnsBadRequest(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/workspaces/not-a-uuid",
		"Bearer "+user.Token,
		http.StatusBadRequest,
	)
}

func Test_UpdateWorkspace_PartialUpdateKeepsOtherFields(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)
	workspace := workspaces_testing.CreateTestWorkspace("Original Name", "Original Client", user.User)

	newName := "Renamed " + uuid.New().String()[:8]

	var response workspaces_dto.WorkspaceResponseDTO
	test_utils.MakePatchRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("/api/v1/workspaces/%s", workspace.ID),
		"Bearer "+user.Token,
		map[string]string{"name": newName},
		http.StatusOK,
		&response,
	)

	assert.Equal(t, newName, response.Name)
	assert.Equal(t, "Original Client", response.ClientName)
}

func Test_DeleteWorkspace_RemovesWorkspaceAndPosts(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)
	workspace := workspaces_testing.CreateTestWorkspace("Doomed", "Acme Inc", user.User)

	post, err := posts_services.GetPostService().UpsertPost(&posts_dto.UpsertPostRequestDTO{
		WorkspaceID: workspace.ID,
		Date:        time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		Platforms: []posts_dto.PlatformEntryDTO{
			{Name: posts_enums.PlatformInstagram, URL: ""},
		},
	}, user.User)
	require.NoError(t, err)

	test_utils.MakeDeleteRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/workspaces/%s", workspace.ID),
		"Bearer "+user.Token,
		http.StatusOK,
	)

	test_utils.MakeGetRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/workspaces/%s", workspace.ID),
		"Bearer "+user.Token,
		http.StatusNotFound,
	)

	_, err = posts_services.GetPostService().GetPost(post.ID)
	assert.Error(t, err)
}

func Test_DeleteWorkspace_UnknownIDReturnsNotFound(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)

	test_utils.MakeDeleteRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/workspaces/%s", uuid.New()),
		"Bearer "+user.Token,
		http.StatusNotFound,
	)
}

func Test_GetWorkspaceAuditLogs_RecordsMutations(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)
	workspace := workspaces_testing.CreateTestWorkspace("Audited", "Acme Inc", user.User)

	test_utils.MakePatchRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/workspaces/%s", workspace.ID),
		"Bearer "+user.Token,
		map[string]string{"name": "Audited v2"},
		http.StatusOK,
	)

	resp := test_utils.MakeGetRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/workspaces/%s/audit-logs", workspace.ID),
		"Bearer "+user.Token,
		http.StatusOK,
	)

	assert.Contains(t, string(resp.Body), "Workspace created")
	assert.Contains(t, string(resp.Body), "Workspace updated")
}
