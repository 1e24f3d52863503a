package posts_controllers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	posts_dto "planboard-backend/internal/features/posts/dto"
	posts_enums "planboard-backend/internal/features/posts/enums"
	posts_models "planboard-backend/internal/features/posts/models"
	users_enums "planboard-backend/internal/features/users/enums"
	users_testing "planboard-backend/internal/features/users/testing"
	workspaces_testing "planboard-backend/internal/features/workspaces/testing"
	test_utils "planboard-backend/internal/util/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_UpsertPost_CreatesPostForDay(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetPostController())
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)
	workspace := workspaces_testing.CreateTestWorkspace("Calendar", "Acme Inc", user.User)

	request := posts_dto.UpsertPostRequestDTO{
		WorkspaceID: workspace.ID,
		Date:        time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC),
		Description: "Launch teaser",
		Platforms: []posts_dto.PlatformEntryDTO{
			{Name: posts_enums.PlatformInstagram, URL: "https://instagram.com/p/abc"},
		},
	}

	var post posts_models.Post
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/posts",
		"Bearer "+user.Token,
		request,
		http.StatusCreated,
		&post,
	)

	assert.NotEqual(t, uuid.Nil, post.ID)
	assert.Equal(t, workspace.ID, post.WorkspaceID)
	assert.Equal(t, "Launch teaser", post.Description)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), post.Date.UTC())

	require.Len(t, post.Platforms, 1)
	assert.Equal(t, posts_enums.PlatformInstagram, post.Platforms[0].Name)
}

func Test_UpsertPost_SameDayOverwritesExistingPost(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetPostController())
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)
	workspace := workspaces_testing.CreateTestWorkspace("Calendar", "Acme Inc", user.User)

	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	var first posts_models.Post
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/posts",
		"Bearer "+user.Token,
		posts_dto.UpsertPostRequestDTO{
			WorkspaceID: workspace.ID,
			Date:        date,
			Description: "First draft",
			Platforms: []posts_dto.PlatformEntryDTO{
				{Name: posts_enums.PlatformInstagram, URL: ""},
				{Name: posts_enums.PlatformTiktok, URL: ""},
			},
		},
		http.StatusCreated,
		&first,
	)

	var second posts_models.Post
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/posts",
		"Bearer "+user.Token,
		posts_dto.UpsertPostRequestDTO{
			WorkspaceID: workspace.ID,
			Date:        date,
			Description: "Final version",
			Platforms: []posts_dto.PlatformEntryDTO{
				{Name: posts_enums.PlatformYoutube, URL: "https://youtube.com/watch?v=x"},
			},
		},
		http.StatusCreated,
		&second,
	)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Final version", second.Description)
	require.Len(t, second.Platforms, 1)
	assert.Equal(t, posts_enums.PlatformYoutube, second.Platforms[0].Name)
}

func Test_UpsertPost_UnknownPlatformReturnsBadRequest(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetPostController())
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)
	workspace := workspaces_testing.CreateTestWorkspace("Calendar", "Acme Inc", user.User)

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/posts",
		"Bearer "+user.Token,
		posts_dto.UpsertPostRequestDTO{
			WorkspaceID: workspace.ID,
			Date:        time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			Platforms: []posts_dto.PlatformEntryDTO{
				{Name: "myspace", URL: ""},
			},
		},
		http.StatusBadRequest,
	)

	assert.Contains(t, string(resp.Body), "unknown platform name")
}

func Test_UpsertPost_UnknownWorkspaceReturnsNotFound(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetPostController())
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/posts",
		"Bearer "+user.Token,
		posts_dto.UpsertPostRequestDTO{
			WorkspaceID: uuid.New(),
			Date:        time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		},
		http.StatusNotFound,
	)
}

func Test_UpsertPost_WithoutAuthToken_ReturnsUnauthorized(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetPostController())

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/posts",
		"",
		posts_dto.UpsertPostRequestDTO{
			WorkspaceID: uuid.New(),
			Date:        time.Now(),
		},
		http.StatusUnauthorized,
	)
}

func Test_ListPosts_ReturnsMonthPostsWithStats(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetPostController())
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)
	workspace := workspaces_testing.CreateTestWorkspace("Calendar", "Acme Inc", user.User)

	days := []struct {
		day       int
		platforms []posts_dto.PlatformEntryDTO
	}{
		{day: 3, platforms: []posts_dto.PlatformEntryDTO{
			{Name: posts_enums.PlatformInstagram, URL: ""},
		}},
		{day: 14, platforms: []posts_dto.PlatformEntryDTO{
			{Name: posts_enums.PlatformTiktok, URL: ""},
			{Name: posts_enums.PlatformYoutube, URL: ""},
		}},
	}

	for _, d := range days {
		test_utils.MakePostRequest(
			t,
			router,
			"/api/v1/posts",
			"Bearer "+user.Token,
			posts_dto.UpsertPostRequestDTO{
				WorkspaceID: workspace.ID,
				Date:        time.Date(2024, 3, d.day, 0, 0, 0, 0, time.UTC),
				Description: fmt.Sprintf("Post for day %d", d.day),
				Platforms:   d.platforms,
			},
			http.StatusCreated,
		)
	}

	var response posts_dto.ListPostsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("/api/v1/posts?workspaceId=%s&month=3&year=2024", workspace.ID),
		"Bearer "+user.Token,
		http.StatusOK,
		&response,
	)

	require.Len(t, response.Posts, 2)
	assert.Equal(t, "Post for day 3", response.Posts[0].Description)
	assert.Equal(t, "Post for day 14", response.Posts[1].Description)

	require.NotNil(t, response.Stats)
	assert.Equal(t, 2, response.Stats.TotalPosts)
	assert.Equal(t, 1, response.Stats.Videos)
	assert.Equal(t, 1, response.Stats.InstagramPosts)
	assert.Equal(t, 1, response.Stats.TiktokPosts)
	assert.Equal(t, 3, response.Stats.PlatformsActive)
	assert.Equal(t, 2, response.Stats.DaysPlanned)
}

func Test_ListPosts_MissingQueryParamsReturnsBadRequest(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetPostController())
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/posts?month=3&year=2024",
		"Bearer "+user.Token,
		http.StatusBadRequest,
	)
}

func Test_DeletePost_ReturnsSuccessEvenWhenAlreadyGone(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetPostController())
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)
	workspace := workspaces_testing.CreateTestWorkspace("Calendar", "Acme Inc", user.User)

	var post posts_models.Post
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/posts",
		"Bearer "+user.Token,
		posts_dto.UpsertPostRequestDTO{
			WorkspaceID: workspace.ID,
			Date:        time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		},
		http.StatusCreated,
		&post,
	)

	test_utils.MakeDeleteRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/posts/%s", post.ID),
		"Bearer "+user.Token,
		http.StatusOK,
	)

	resp := test_utils.MakeDeleteRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/posts/%s", post.ID),
		"Bearer "+user.Token,
		http.StatusOK,
	)

	assert.Contains(t, string(resp.Body), "true")

	var listResponse posts_dto.ListPostsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("/api/v1/posts?workspaceId=%s&month=3&year=2024", workspace.ID),
		"Bearer "+user.Token,
		http.StatusOK,
		&listResponse,
	)

	assert.Empty(t, listResponse.Posts)
}
