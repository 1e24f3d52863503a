package posts_repositories

var postRepository = &PostRepository{}

func GetPostRepository() *PostRepository {
	return postRepository
}
