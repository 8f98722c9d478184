package handler

import (
	"Blog/pkg/context"
	"Blog/pkg/response"
	"Blog/service"
	"Blog/types"

	"github.com/gin-gonic/gin"
)

type Post struct {
	PostService service.IPostService
}

func (p *Post) RegisterRouter(r gin.IRouter) {
	r.POST("/CreateBlog/:username", context.Wrap(p.CreateBlog))
	r.GET("/Blogs", context.Wrap(p.ListBlogs))
	r.GET("/Blogs/:username", context.Wrap(p.ListUserBlogs))
	r.GET("/Blog/:post_id", context.Wrap(p.GetBlog))
}

func (p *Post) CreateBlog(c *gin.Context) error {
	var req types.CreatePostRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	if _, err := p.PostService.Create(c.Request.Context(), c.Param("username"), &req); err != nil {
		return err
	}
	response.Created(c, "Blog posted successfully")
	return nil
}

func (p *Post) ListBlogs(c *gin.Context) error {
	posts, err := p.PostService.List(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, posts)
	return nil
}

func (p *Post) ListUserBlogs(c *gin.Context) error {
	posts, err := p.PostService.ListByAuthor(c.Request.Context(), c.Param("username"))
	if err != nil {
		return err
	}
	response.Success(c, posts)
	return nil
}

func (p *Post) GetBlog(c *gin.Context) error {
	postID, err := paramUint64(c, "post_id")
	if err != nil {
		return err
	}

	post, err := p.PostService.Get(c.Request.Context(), postID)
	if err != nil {
		return err
	}
	response.Success(c, post)
	return nil
}
