package posts_controllers

import (
	posts_services "planboard-backend/internal/features/posts/services"
)

var postController = &PostController{
	posts_services.GetPostService(),
}

func GetPostController() *PostController {
	return postController
}
