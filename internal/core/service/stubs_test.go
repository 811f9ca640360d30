package service

import (
	"context"
	"sort"
	"strings"

	"github.com/artgallery/gallery-service/internal/core/domain"
	"github.com/artgallery/gallery-service/internal/core/ports"
)

// --- painting repository stub ---

type stubPaintingRepo struct {
	paintings map[int]*domain.Painting
	nextID    int
}

func newStubPaintingRepo() *stubPaintingRepo {
	return &stubPaintingRepo{paintings: make(map[int]*domain.Painting), nextID: 1}
}

func (r *stubPaintingRepo) Insert(_ context.Context, p *domain.Painting) (*domain.Painting, error) {
	clone := *p
	clone.ID = r.nextID
	r.nextID++
	r.paintings[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPaintingRepo) FindByID(_ context.Context, id int) (*domain.Painting, error) {
	p, ok := r.paintings[id]
	if !ok {
		return nil, domain.ErrPaintingNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPaintingRepo) List(_ context.Context, filter ports.ListPaintingsFilter) ([]domain.Painting, int64, error) {
	var all []domain.Painting
	for _, p := range r.paintings {
		if filter.CategoryID != 0 && p.CategoryID != filter.CategoryID {
			continue
		}
		if filter.ArtistID != 0 && p.ArtistID != filter.ArtistID {
			continue
		}
		if filter.Featured && !p.IsFeatured {
			continue
		}
		if filter.Search != "" && !strings.Contains(p.Title, filter.Search) && !strings.Contains(p.Description, filter.Search) {
			continue
		}
		all = append(all, *p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := int64(len(all))
	start := (filter.Page - 1) * filter.Limit
	if start > len(all) {
		start = len(all)
	}
	end := start + filter.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *stubPaintingRepo) Update(_ context.Context, p *domain.Painting) error {
	if _, ok := r.paintings[p.ID]; !ok {
		return domain.ErrPaintingNotFound
	}
	clone := *p
	r.paintings[p.ID] = &clone
	return nil
}

func (r *stubPaintingRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.paintings[id]; !ok {
		return domain.ErrPaintingNotFound
	}
	delete(r.paintings, id)
	return nil
}

func (r *stubPaintingRepo) UpdateRatingStats(_ context.Context, id int, average float64, count int) error {
	p, ok := r.paintings[id]
	if !ok {
		return domain.ErrPaintingNotFound
	}
	p.AverageRating = average
	p.RatingCount = count
	return nil
}

func (r *stubPaintingRepo) UpdateCommentCount(_ context.Context, id, count int) error {
	p, ok := r.paintings[id]
	if !ok {
		return domain.ErrPaintingNotFound
	}
	p.CommentCount = count
	return nil
}

// --- category repository stub ---

type stubCategoryRepo struct {
	categories map[int]*domain.Category
	nextID     int
}

func newStubCategoryRepo(seed ...domain.Category) *stubCategoryRepo {
	r := &stubCategoryRepo{categories: make(map[int]*domain.Category), nextID: 1}
	for i := range seed {
		c := seed[i]
		r.categories[c.ID] = &c
		if c.ID >= r.nextID {
			r.nextID = c.ID + 1
		}
	}
	return r
}

func (r *stubCategoryRepo) Insert(_ context.Context, c *domain.Category) (*domain.Category, error) {
	clone := *c
	clone.ID = r.nextID
	r.nextID++
	r.categories[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id int) (*domain.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	var all []domain.Category
	for _, c := range r.categories {
		all = append(all, *c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *domain.Category) error {
	if _, ok := r.categories[c.ID]; !ok {
		return domain.ErrCategoryNotFound
	}
	clone := *c
	r.categories[c.ID] = &clone
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

// --- rating repository stub ---

type stubRatingRepo struct {
	ratings map[int]*domain.Rating
	nextID  int
}

func newStubRatingRepo() *stubRatingRepo {
	return &stubRatingRepo{ratings: make(map[int]*domain.Rating), nextID: 1}
}

func (r *stubRatingRepo) Upsert(_ context.Context, in *domain.Rating) (*domain.Rating, error) {
	for _, existing := range r.ratings {
		if existing.PaintingID == in.PaintingID && existing.UserID == in.UserID {
			existing.Score = in.Score
			clone := *existing
			return &clone, nil
		}
	}
	clone := *in
	clone.ID = r.nextID
	r.nextID++
	r.ratings[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubRatingRepo) FindByID(_ context.Context, id int) (*domain.Rating, error) {
	rt, ok := r.ratings[id]
	if !ok {
		return nil, domain.ErrRatingNotFound
	}
	clone := *rt
	return &clone, nil
}

func (r *stubRatingRepo) List(_ context.Context, filter ports.ListRatingsFilter) ([]domain.Rating, int64, error) {
	var all []domain.Rating
	for _, rt := range r.ratings {
		if filter.PaintingID != 0 && rt.PaintingID != filter.PaintingID {
			continue
		}
		if filter.UserID != 0 && rt.UserID != filter.UserID {
			continue
		}
		all = append(all, *rt)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := int64(len(all))
	start := (filter.Page - 1) * filter.Limit
	if start > len(all) {
		start = len(all)
	}
	end := start + filter.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *stubRatingRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.ratings[id]; !ok {
		return domain.ErrRatingNotFound
	}
	delete(r.ratings, id)
	return nil
}

func (r *stubRatingRepo) Aggregate(_ context.Context, paintingID int) (float64, int, error) {
	sum, count := 0, 0
	for _, rt := range r.ratings {
		if rt.PaintingID == paintingID {
			sum += rt.Score
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

// --- comment repository stub ---

type stubCommentRepo struct {
	comments map[int]*domain.Comment
	nextID   int
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{comments: make(map[int]*domain.Comment), nextID: 1}
}

func (r *stubCommentRepo) Insert(_ context.Context, c *domain.Comment) (*domain.Comment, error) {
	clone := *c
	clone.ID = r.nextID
	r.nextID++
	r.comments[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCommentRepo) FindByID(_ context.Context, id int) (*domain.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCommentRepo) List(_ context.Context, filter ports.ListCommentsFilter) ([]domain.Comment, int64, error) {
	var all []domain.Comment
	for _, c := range r.comments {
		if filter.PaintingID != 0 && c.PaintingID != filter.PaintingID {
			continue
		}
		if filter.UserID != 0 && c.UserID != filter.UserID {
			continue
		}
		all = append(all, *c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := int64(len(all))
	start := (filter.Page - 1) * filter.Limit
	if start > len(all) {
		start = len(all)
	}
	end := start + filter.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *stubCommentRepo) Update(_ context.Context, c *domain.Comment) error {
	if _, ok := r.comments[c.ID]; !ok {
		return domain.ErrCommentNotFound
	}
	clone := *c
	r.comments[c.ID] = &clone
	return nil
}

func (r *stubCommentRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.comments[id]; !ok {
		return domain.ErrCommentNotFound
	}
	delete(r.comments, id)
	return nil
}

func (r *stubCommentRepo) CountForPainting(_ context.Context, paintingID int) (int, error) {
	count := 0
	for _, c := range r.comments {
		if c.PaintingID == paintingID {
			count++
		}
	}
	return count, nil
}
