package admin

import (
	"net/http"

	"ims_server/handling"
	"ims_server/lib"
	"ims_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// Product mutations go through the product service so category membership
// rows stay in sync.
func (ar *AdminRoutesManager) registerProductRoutes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", ar.listProducts)
		r.Get("/{id}", ar.getProduct)
		r.Post("/", ar.createProduct)
		r.Put("/{id}", ar.updateProduct)
		r.Delete("/{id}", ar.deleteProduct)
	})
}

func (ar *AdminRoutesManager) listProducts(w http.ResponseWriter, r *http.Request) {
	opts, err := handling.ParseProductListOptions(r)
	if err != nil {
		ar.logger.Warn("Failed to parse product list options", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Invalid query parameters"), gecho.Send())
		return
	}

	result, err := ar.productService.List(r.Context(), opts)
	if err != nil {
		ar.logger.Error("Failed to list products", gecho.Field("error", err))
		handling.RespondDomainError(err, ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) getProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(w, r)
	if !ok {
		return
	}

	product, err := ar.productService.GetByID(r.Context(), id)
	if err != nil {
		handling.RespondDomainError(err, ar.logger, w)
		return
	}

	gecho.Success(w, gecho.WithData(product), gecho.Send())
}

func (ar *AdminRoutesManager) createProduct(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.ProductRequest](r)
	if err != nil {
		ar.logger.Warn("Failed to extract product body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the product fields"), gecho.WithData(err), gecho.Send())
		return
	}

	product, err := ar.productService.Create(r.Context(), body)
	if err != nil {
		handling.RespondDomainError(err, ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product created"),
		gecho.WithData(product),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(w, r)
	if !ok {
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.ProductRequest](r)
	if err != nil {
		ar.logger.Warn("Failed to extract product body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the product fields"), gecho.WithData(err), gecho.Send())
		return
	}

	product, err := ar.productService.Update(r.Context(), id, body)
	if err != nil {
		handling.RespondDomainError(err, ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product updated"),
		gecho.WithData(product),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(w, r)
	if !ok {
		return
	}

	if err := ar.productService.Delete(r.Context(), id); err != nil {
		handling.RespondDomainError(err, ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product deleted"),
		gecho.Send(),
	)
}
