package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"eggslist_backend/internal/imageprocessor"
	"eggslist_backend/internal/logger"
	"eggslist_backend/internal/models"
	"eggslist_backend/internal/repositories"
	"eggslist_backend/internal/services/dto"
	"eggslist_backend/internal/storage"
	"eggslist_backend/internal/utils"
	appvalidator "eggslist_backend/internal/validator"
	"eggslist_backend/internal/workers"
	"eggslist_backend/pkg/apperrors"
)

// recommendationLimit caps each recommendation strip on the product
// page.
const recommendationLimit = 6

type CatalogService interface {
	ListCategories(ctx context.Context) ([]dto.CategoryView, error)
	ListProducts(ctx context.Context, viewer dto.ViewerContext, filter repositories.ProductFilter) (*dto.PagedProducts, error)
	ListSellerProducts(ctx context.Context, viewer dto.ViewerContext, sellerID string) ([]dto.ProductSummary, error)

	// GetProduct renders the product page: detail, seller card and both
	// recommendation strips, personalized for the viewer.
	GetProduct(ctx context.Context, viewer dto.ViewerContext, slug string) (*dto.ProductArticle, error)

	CreateProduct(ctx context.Context, userID string, req dto.CreateProductRequest) (*dto.ProductSummary, error)
	UpdateProduct(ctx context.Context, userID, slug string, req dto.UpdateProductRequest) (*dto.ProductSummary, error)
	DeleteProduct(ctx context.Context, userID, slug string) error
	UploadProductImage(ctx context.Context, userID, slug string, file io.Reader) (*dto.ProductSummary, error)

	SetHidden(ctx context.Context, userID, slug string, hidden bool) error
	SetOutOfStock(ctx context.Context, userID, slug string, outOfStock bool) error
	// BanProduct is the moderation takedown. It is one-way.
	BanProduct(ctx context.Context, slug string) error
}

type CatalogServiceImpl struct {
	products  repositories.ProductRepository
	users     repositories.UserRepository
	images    *imageprocessor.Processor
	validator *appvalidator.Validator
	outbox    *workers.Outbox
	personalizer
}

func NewCatalogService(
	products repositories.ProductRepository,
	users repositories.UserRepository,
	favorites repositories.FavoriteRepository,
	store storage.Storage,
	images *imageprocessor.Processor,
	validator *appvalidator.Validator,
	outbox *workers.Outbox,
) CatalogService {
	return &CatalogServiceImpl{
		products:     products,
		users:        users,
		images:       images,
		validator:    validator,
		outbox:       outbox,
		personalizer: personalizer{favorites: favorites, store: store},
	}
}

func (s *CatalogServiceImpl) ListCategories(ctx context.Context) ([]dto.CategoryView, error) {
	categories, err := s.products.ListCategories()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := make([]dto.CategoryView, 0, len(categories))
	for _, category := range categories {
		view := dto.CategoryView{
			Name:     category.Name,
			Slug:     category.Slug,
			ImageURL: s.fileURL(ctx, category.ImagePath),
		}
		view.Subcategories = make([]dto.SubcategoryView, 0, len(category.Subcategories))
		for _, sub := range category.Subcategories {
			view.Subcategories = append(view.Subcategories, dto.SubcategoryView{
				Name: sub.Name,
				Slug: sub.Slug,
			})
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *CatalogServiceImpl) ListProducts(ctx context.Context, viewer dto.ViewerContext, filter repositories.ProductFilter) (*dto.PagedProducts, error) {
	products, total, err := s.products.ListListable(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.PagedProducts{
		Products: s.productCards(ctx, viewer, products),
		Total:    total,
	}, nil
}

// ListSellerProducts lists a seller's storefront. On a self view hidden
// products are included so sellers can manage them; banned products are
// gone for everyone.
func (s *CatalogServiceImpl) ListSellerProducts(ctx context.Context, viewer dto.ViewerContext, sellerID string) ([]dto.ProductSummary, error) {
	includeHidden := viewer.UserID != "" && viewer.UserID == sellerID

	products, err := s.products.ListBySeller(sellerID, includeHidden)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.productCards(ctx, viewer, products), nil
}

func (s *CatalogServiceImpl) GetProduct(ctx context.Context, viewer dto.ViewerContext, slug string) (*dto.ProductArticle, error) {
	product, err := s.products.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	// Banned products are gone for everyone, the owner included. Hidden
	// products stay reachable only on the owner's own view.
	if product.IsBanned {
		return nil, apperrors.ErrNotFound(repositories.ErrProductNotFound)
	}
	isOwner := viewer.UserID != "" && viewer.UserID == product.SellerID
	if product.IsHidden && !isOwner {
		return nil, apperrors.ErrNotFound(repositories.ErrProductNotFound)
	}
	viewer.IsSelfView = isOwner

	similar, err := s.products.FindSimilar(product.SubcategoryID, product.ID, product.SellerID, recommendationLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	fromFarm, err := s.products.FindFromSameSeller(product.SellerID, product.ID, recommendationLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// One bulk favorite lookup covers the main seller and every seller
	// in both strips.
	sellers := make([]*models.User, 0, 1+len(similar)+len(fromFarm))
	sellers = append(sellers, product.Seller)
	for i := range similar {
		sellers = append(sellers, similar[i].Seller)
	}
	for i := range fromFarm {
		sellers = append(sellers, fromFarm[i].Seller)
	}
	cards := s.sellerCards(ctx, viewer, sellers)

	view := &dto.ProductArticle{
		ProductSummary: s.productSummary(ctx, product, &cards[0]),
		Description:    product.Description,
	}

	view.YouMayAlsoLike = make([]dto.ProductSummary, 0, len(similar))
	for i := range similar {
		view.YouMayAlsoLike = append(view.YouMayAlsoLike,
			s.productSummary(ctx, &similar[i], &cards[1+i]))
	}

	view.MoreFromThisFarm = make([]dto.ProductSummary, 0, len(fromFarm))
	for i := range fromFarm {
		view.MoreFromThisFarm = append(view.MoreFromThisFarm,
			s.productSummary(ctx, &fromFarm[i], &cards[1+len(similar)+i]))
	}

	return view, nil
}

func (s *CatalogServiceImpl) CreateProduct(ctx context.Context, userID string, req dto.CreateProductRequest) (*dto.ProductSummary, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, validationToAppError(err)
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	// Listing eligibility. These come back as popup errors so the
	// storefront can walk the user through fixing their profile.
	if !user.IsEmailVerified {
		return nil, apperrors.ErrSellerNeedsEmailVerification
	}
	if !user.HasCompleteSellerProfile() {
		return nil, apperrors.ErrSellerNeedsMoreInfo
	}

	subcategory, err := s.products.FindSubcategoryBySlug(req.SubcategorySlug)
	if err != nil {
		if errors.Is(err, repositories.ErrSubcategoryNotFound) {
			return nil, apperrors.FieldValidationError("subcategory_slug", "Unknown subcategory")
		}
		return nil, apperrors.InternalError(err)
	}

	product := &models.ProductArticle{
		Title:         req.Title,
		Slug:          utils.Slugify(req.Title),
		Description:   req.Description,
		Price:         req.Price,
		AllowPickup:   true,
		SubcategoryID: subcategory.ID,
		SellerID:      userID,
	}
	if req.AllowPickup != nil {
		product.AllowPickup = *req.AllowPickup
	}
	if req.AllowDelivery != nil {
		product.AllowDelivery = *req.AllowDelivery
	}

	if err := s.products.Create(product); err != nil {
		if !errors.Is(err, repositories.ErrProductSlugTaken) {
			return nil, apperrors.InternalError(err)
		}
		// Slug collision with another listing: retry once with a random
		// suffix.
		product.Slug = utils.UniqueSlug(product.Slug)
		if err := s.products.Create(product); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	logger.CtxInfo(ctx, "product created", "product_id", product.ID, "seller_id", userID)

	product.Seller = user
	return s.ownerSummary(ctx, product), nil
}

func (s *CatalogServiceImpl) UpdateProduct(ctx context.Context, userID, slug string, req dto.UpdateProductRequest) (*dto.ProductSummary, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, validationToAppError(err)
	}

	product, err := s.ownedProduct(userID, slug)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		product.Title = *req.Title
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.AllowPickup != nil {
		product.AllowPickup = *req.AllowPickup
	}
	if req.AllowDelivery != nil {
		product.AllowDelivery = *req.AllowDelivery
	}
	if req.SubcategorySlug != nil {
		subcategory, err := s.products.FindSubcategoryBySlug(*req.SubcategorySlug)
		if err != nil {
			if errors.Is(err, repositories.ErrSubcategoryNotFound) {
				return nil, apperrors.FieldValidationError("subcategory_slug", "Unknown subcategory")
			}
			return nil, apperrors.InternalError(err)
		}
		product.SubcategoryID = subcategory.ID
	}

	if err := s.products.Update(product); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.ownerSummary(ctx, product), nil
}

func (s *CatalogServiceImpl) DeleteProduct(ctx context.Context, userID, slug string) error {
	product, err := s.ownedProduct(userID, slug)
	if err != nil {
		return err
	}

	if err := s.products.Delete(product.ID); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "product deleted", "product_id", product.ID, "seller_id", userID)
	return nil
}

func (s *CatalogServiceImpl) UploadProductImage(ctx context.Context, userID, slug string, file io.Reader) (*dto.ProductSummary, error) {
	product, err := s.ownedProduct(userID, slug)
	if err != nil {
		return nil, err
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !imageprocessor.IsValidImage(bytes.NewReader(raw)) {
		return nil, apperrors.NewBadRequestError("Unsupported or corrupt image")
	}

	// The path is fixed up front so the record can point at it
	// immediately; re-encode and upload happen off the request path.
	path := fmt.Sprintf("products/%s.jpg", product.ID)
	product.ImagePath = path
	if err := s.products.Update(product); err != nil {
		return nil, apperrors.InternalError(err)
	}

	store := s.store
	images := s.images
	s.outbox.Enqueue(workers.Job{
		Name: "image:product",
		Run: func(ctx context.Context) error {
			processed, err := images.ProcessListingImage(bytes.NewReader(raw))
			if err != nil {
				return err
			}
			return store.Save(ctx, path, processed, "image/jpeg")
		},
	})

	return s.ownerSummary(ctx, product), nil
}

func (s *CatalogServiceImpl) SetHidden(ctx context.Context, userID, slug string, hidden bool) error {
	product, err := s.ownedProduct(userID, slug)
	if err != nil {
		return err
	}
	if err := s.products.SetHidden(product.ID, hidden); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CatalogServiceImpl) SetOutOfStock(ctx context.Context, userID, slug string, outOfStock bool) error {
	product, err := s.ownedProduct(userID, slug)
	if err != nil {
		return err
	}
	if err := s.products.SetOutOfStock(product.ID, outOfStock); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CatalogServiceImpl) BanProduct(ctx context.Context, slug string) error {
	product, err := s.products.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if err := s.products.SetBanned(product.ID); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxWarn(ctx, "product banned", "product_id", product.ID, "seller_id", product.SellerID)
	return nil
}

// ownedProduct loads a product and checks the caller owns it. A banned
// product is unreachable even for its owner.
func (s *CatalogServiceImpl) ownedProduct(userID, slug string) (*models.ProductArticle, error) {
	product, err := s.products.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if product.IsBanned {
		return nil, apperrors.ErrProductBanned
	}
	if product.SellerID != userID {
		return nil, apperrors.NewForbiddenError("You do not own this product")
	}
	return product, nil
}

// productCards renders listing cards with one bulk favorite merge for
// the whole page.
func (s *CatalogServiceImpl) productCards(ctx context.Context, viewer dto.ViewerContext, products []models.ProductArticle) []dto.ProductSummary {
	sellers := make([]*models.User, len(products))
	for i := range products {
		sellers[i] = products[i].Seller
	}
	cards := s.sellerCards(ctx, viewer, sellers)

	summaries := make([]dto.ProductSummary, 0, len(products))
	for i := range products {
		summaries = append(summaries, s.productSummary(ctx, &products[i], &cards[i]))
	}
	return summaries
}

func (s *CatalogServiceImpl) productSummary(ctx context.Context, product *models.ProductArticle, seller *dto.PersonalizedSeller) dto.ProductSummary {
	summary := dto.ProductSummary{
		ID:            product.ID,
		Title:         product.Title,
		Slug:          product.Slug,
		ImageURL:      s.fileURL(ctx, product.ImagePath),
		Price:         dto.FormatPrice(product.Price),
		AllowPickup:   product.AllowPickup,
		AllowDelivery: product.AllowDelivery,
		IsOutOfStock:  product.IsOutOfStock,
		IsHidden:      product.IsHidden,
		Seller:        seller,
		CreatedAt:     product.CreatedAt.Format(time.RFC3339),
	}
	if product.Subcategory != nil {
		summary.Subcategory = product.Subcategory.Name
	}
	return summary
}

// ownerSummary renders a seller's own product without the favorite
// merge; a seller never favorites themselves.
func (s *CatalogServiceImpl) ownerSummary(ctx context.Context, product *models.ProductArticle) *dto.ProductSummary {
	var seller *dto.PersonalizedSeller
	if product.Seller != nil {
		seller = &dto.PersonalizedSeller{
			SellerSummary: dto.NewSellerSummary(product.Seller, s.avatarURL(ctx, product.Seller)),
		}
	}
	summary := s.productSummary(ctx, product, seller)
	return &summary
}

func (s *CatalogServiceImpl) fileURL(ctx context.Context, path string) string {
	if path == "" {
		return ""
	}
	url, err := s.store.GetURL(ctx, path)
	if err != nil {
		return ""
	}
	return url
}
