package http

import (
	"context"

	"chaseplus/internal/entity"
	"chaseplus/internal/usecase"

	"github.com/stretchr/testify/mock"
)

type MockCourseUseCase struct {
	mock.Mock
}

func (m *MockCourseUseCase) Create(ctx context.Context, input usecase.CourseInput, image *entity.ImageFile) (*entity.Course, error) {
	args := m.Called(ctx, input, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Course), args.Error(1)
}

func (m *MockCourseUseCase) Update(ctx context.Context, id string, input usecase.CourseInput, image *entity.ImageFile) (*entity.Course, error) {
	args := m.Called(ctx, id, input, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Course), args.Error(1)
}

func (m *MockCourseUseCase) ToggleActive(ctx context.Context, id string) (*entity.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Course), args.Error(1)
}

func (m *MockCourseUseCase) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCourseUseCase) GetByID(ctx context.Context, id string) (*entity.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Course), args.Error(1)
}

func (m *MockCourseUseCase) ListByCategory(ctx context.Context, category string) ([]entity.CourseSummary, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.CourseSummary), args.Error(1)
}

func (m *MockCourseUseCase) ListPaged(ctx context.Context, query usecase.ListQuery) (*entity.Page[*entity.Course], error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Page[*entity.Course]), args.Error(1)
}

func (m *MockCourseUseCase) ListActive(ctx context.Context) ([]*entity.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Course), args.Error(1)
}

type MockBlogUseCase struct {
	mock.Mock
}

func (m *MockBlogUseCase) Create(ctx context.Context, input usecase.BlogInput, image *entity.ImageFile) (*entity.Blog, error) {
	args := m.Called(ctx, input, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Blog), args.Error(1)
}

func (m *MockBlogUseCase) Update(ctx context.Context, id string, input usecase.BlogInput, image *entity.ImageFile) (*entity.Blog, error) {
	args := m.Called(ctx, id, input, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Blog), args.Error(1)
}

func (m *MockBlogUseCase) TogglePublished(ctx context.Context, id string) (*entity.Blog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Blog), args.Error(1)
}

func (m *MockBlogUseCase) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBlogUseCase) GetByID(ctx context.Context, id string) (*entity.Blog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Blog), args.Error(1)
}

func (m *MockBlogUseCase) View(ctx context.Context, id, visitor string) (*entity.Blog, error) {
	args := m.Called(ctx, id, visitor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Blog), args.Error(1)
}

func (m *MockBlogUseCase) ListPublishedRecent(ctx context.Context, limit int) ([]*entity.Blog, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Blog), args.Error(1)
}

func (m *MockBlogUseCase) ListPaged(ctx context.Context, query usecase.ListQuery) (*entity.Page[*entity.Blog], error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Page[*entity.Blog]), args.Error(1)
}

func (m *MockBlogUseCase) ListAll(ctx context.Context) ([]*entity.Blog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Blog), args.Error(1)
}

type MockCategoryUseCase struct {
	mock.Mock
}

func (m *MockCategoryUseCase) ValidateCourseCategory(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockCategoryUseCase) Create(ctx context.Context, input usecase.CategoryInput) (*entity.Category, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryUseCase) Update(ctx context.Context, id string, input usecase.CategoryInput) (*entity.Category, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryUseCase) ToggleActive(ctx context.Context, id string) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryUseCase) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryUseCase) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryUseCase) List(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *MockCategoryUseCase) ListActive(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Category), args.Error(1)
}

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Login(ctx context.Context, email, password string) (*entity.Admin, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.Admin), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) GetAdmin(ctx context.Context) (*entity.Admin, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Admin), args.Error(1)
}

func (m *MockAuthUseCase) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	args := m.Called(ctx, currentPassword, newPassword)
	return args.Error(0)
}

func (m *MockAuthUseCase) EnsureAdmin(ctx context.Context, email, password, name string) (*entity.Admin, bool, error) {
	args := m.Called(ctx, email, password, name)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*entity.Admin), args.Bool(1), args.Error(2)
}

var (
	_ usecase.CourseUseCase   = (*MockCourseUseCase)(nil)
	_ usecase.BlogUseCase     = (*MockBlogUseCase)(nil)
	_ usecase.CategoryUseCase = (*MockCategoryUseCase)(nil)
	_ usecase.AuthUseCase     = (*MockAuthUseCase)(nil)
)
