package share

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
	workspaces_testing "planboard-backend/internal/features/workspaces/testing"
	test_utils "planboard-backend/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createShareTestRouter() *gin.Engine {
	router := workspaces_testing.CreateTestRouter(GetShareController())
	GetShareController().RegisterPublicRoutes(router.Group("/api/v1"))

	return router
}

func Test_IssueToken_ThenPublicCalendarReadableWithoutAuth(t *testing.T) {
	router := createShareTestRouter()
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)
	workspace := workspaces_testing.CreateTestWorkspace("Campaign", "Acme Inc", user.User)

	_, err := posts_services.GetPostService().UpsertPost(&posts_dto.UpsertPostRequestDTO{
		WorkspaceID: workspace.ID,
		Date:        time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Description: "Launch teaser",
		Platforms: []posts_dto.PlatformEntryDTO{
			{Name: posts_enums.PlatformInstagram, URL: ""},
		},
	}, user.User)
	require.NoError(t, err)

	var issued IssueShareTokenResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("/api/v1/share/%s", workspace.ID),
		"Bearer "+user.Token,
		nil,
		http.StatusOK,
		&issued,
	)

	assert.NotEmpty(t, issued.ShareToken)

	// The public read path needs no Authorization header
	var calendar PublicCalendarResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("/api/v1/share/token/%s?month=3&year=2024", issued.ShareToken),
		"",
		http.StatusOK,
		&calendar,
	)

	assert.Equal(t, workspace.ID, calendar.Workspace.ID)
	require.Len(t, calendar.Posts, 1)
	assert.Equal(t, "Launch teaser", calendar.Posts[0].Description)
}

func Test_IssueToken_WithoutAuthToken_ReturnsUnauthorized(t *testing.T) {
	router := createShareTestRouter()

	test_utils.MakePostRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/share/%s", uuid.New()),
		"",
		nil,
		http.StatusUnauthorized,
	)
}

func Test_RevokeToken_KillsPublicAccess(t *testing.T) {
	router := createShareTestRouter()
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)
	workspace := workspaces_testing.CreateTestWorkspace("Campaign", "Acme Inc", user.User)

	var issued IssueShareTokenResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("/api/v1/share/%s", workspace.ID),
		"Bearer "+user.Token,
		nil,
		http.StatusOK,
		&issued,
	)

	test_utils.MakeDeleteRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/share/%s", workspace.ID),
		"Bearer "+user.Token,
		http.StatusOK,
	)

	test_utils.MakeGetRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/share/token/%s", issued.ShareToken),
		"",
		http.StatusNotFound,
	)
}

func Test_GetPublicCalendar_UnknownTokenReturnsNotFound(t *testing.T) {
	router := createShareTestRouter()

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/share/token/unknown-token-abc123",
		"",
		http.StatusNotFound,
	)
}

func Test_GetPublicCalendar_MalformedMonthReturnsBadRequest(t *testing.T) {
	router := createShareTestRouter()
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)
	workspace := workspaces_testing.CreateTestWorkspace("Campaign", "Acme Inc", user.User)

	var issued IssueShareTokenResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("/api/v1/share/%s", workspace.ID),
		"Bearer "+user.Token,
		nil,
		http.StatusOK,
		&issued,
	)

	test_utils.MakeGetRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/share/token/%s?month=march", issued.ShareToken),
		"",
		http.StatusBadRequest,
	)
}
