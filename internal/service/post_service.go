package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/d60-Lab/gin-blog/internal/model"
	"github.com/d60-Lab/gin-blog/internal/repository"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrTitleTaken   = errors.New("a post with that title already exists")
)

// DateLayout 文章创建日的展示格式（等价 "%B %d, %Y"）
const DateLayout = "January 02, 2006"

// PostInput 新建 / 编辑文章的可写字段
type PostInput struct {
	Title    string
	Subtitle string
	ImgURL   string
	Body     string
}

type PostService interface {
	List(ctx context.Context) ([]*model.Post, error)
	Get(ctx context.Context, id uint) (*model.Post, error)
	Create(ctx context.Context, author *model.User, in PostInput) (*model.Post, error)
	Update(ctx context.Context, id uint, editor *model.User, in PostInput) (*model.Post, error)
	Delete(ctx context.Context, id uint) error
}

type postService struct {
	posts repository.PostRepository
	now   func() time.Time
}

func NewPostService(posts repository.PostRepository) PostService {
	return &postService{posts: posts, now: time.Now}
}

func (s *postService) List(ctx context.Context) ([]*model.Post, error) {
	return s.posts.List(ctx)
}

func (s *postService) Get(ctx context.Context, id uint) (*model.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *postService) Create(ctx context.Context, author *model.User, in PostInput) (*model.Post, error) {
	taken, err := s.posts.ExistsByTitle(ctx, in.Title)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrTitleTaken
	}
	post := &model.Post{
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Title:      in.Title,
		Subtitle:   in.Subtitle,
		Date:       s.now().Format(DateLayout),
		Body:       in.Body,
		ImgURL:     in.ImgURL,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTitleTaken
		}
		return nil, err
	}
	return post, nil
}

// Update 改写 title/subtitle/img/body，并把展示作者名强制改为编辑者名；
// ID、Date 与 AuthorID 保持不变。
func (s *postService) Update(ctx context.Context, id uint, editor *model.User, in PostInput) (*model.Post, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Title != post.Title {
		taken, err := s.posts.ExistsByTitle(ctx, in.Title)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrTitleTaken
		}
	}
	post.Title = in.Title
	post.Subtitle = in.Subtitle
	post.ImgURL = in.ImgURL
	post.Body = in.Body
	post.AuthorName = editor.Name
	if err := s.posts.Update(ctx, post); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTitleTaken
		}
		return nil, err
	}
	return post, nil
}

func (s *postService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.posts.Delete(ctx, id)
}
