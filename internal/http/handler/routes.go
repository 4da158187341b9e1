package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"shopapi/internal/http/middleware"
	"shopapi/internal/model"
	"shopapi/internal/security"
	"shopapi/internal/service"
)

// Services are the use cases exposed over HTTP.
type Services struct {
	Auth        service.AuthService
	Users       service.UserService
	Categories  service.CategoryService
	SubCategory service.SubCategoryService
	Brands      service.BrandService
	Suppliers   service.SupplierService
	Coupons     service.CouponService
	Tax         service.TaxService
	Products    service.ProductService
	Cart        service.CartService
	Orders      service.OrderService
}

// RegisterRoutes mounts the health probes at the root and the API under /api/v1.
func RegisterRoutes(app *fiber.App, db *sql.DB, tokens *security.TokenIssuer, s Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api/v1")

	auth := middleware.Auth(tokens)
	admin := middleware.RequireRoles(model.RoleAdmin)
	customer := middleware.RequireRoles(model.RoleUser)
	anyone := middleware.RequireRoles(model.RoleUser, model.RoleAdmin)

	ah := &authHandler{svc: s.Auth}
	g := api.Group("/auth")
	g.Post("/sign-up", ah.signUp)
	g.Post("/verify-email", ah.verifyEmail)
	g.Post("/resend-otp", ah.resendOTP)
	g.Post("/sign-in", ah.signIn)
	g.Post("/forgot-password", ah.forgotPassword)
	g.Post("/reset-password", ah.resetPassword)

	uh := &userHandler{svc: s.Users}
	// Group middleware matches by plain prefix and would also catch /userMe.
	g = api.Group("/user")
	g.Post("/", auth, admin, uh.create)
	g.Get("/", auth, admin, uh.list)
	g.Get("/:id", auth, admin, uh.get)
	g.Patch("/:id", auth, admin, uh.update)
	g.Delete("/:id", auth, admin, uh.delete)

	g = api.Group("/userMe", auth)
	g.Get("/", anyone, uh.me)
	g.Patch("/", anyone, uh.updateMe)
	g.Delete("/", customer, uh.deleteMe)

	ch := &categoryHandler{svc: s.Categories}
	g = api.Group("/category")
	g.Get("/", ch.list)
	g.Get("/:id", ch.get)
	g.Post("/", auth, admin, ch.create)
	g.Patch("/:id", auth, admin, ch.update)
	g.Delete("/:id", auth, admin, ch.delete)

	sh := &subCategoryHandler{svc: s.SubCategory}
	g = api.Group("/sub-category")
	g.Get("/", sh.list)
	g.Get("/:id", sh.get)
	g.Post("/", auth, admin, sh.create)
	g.Patch("/:id", auth, admin, sh.update)
	g.Delete("/:id", auth, admin, sh.delete)

	bh := &brandHandler{svc: s.Brands}
	g = api.Group("/brand")
	g.Get("/", bh.list)
	g.Get("/:id", bh.get)
	g.Post("/", auth, admin, bh.create)
	g.Patch("/:id", auth, admin, bh.update)
	g.Delete("/:id", auth, admin, bh.delete)

	suh := &supplierHandler{svc: s.Suppliers}
	g = api.Group("/suppliers", auth, admin)
	g.Post("/", suh.create)
	g.Get("/", suh.list)
	g.Get("/:id", suh.get)
	g.Patch("/:id", suh.update)
	g.Delete("/:id", suh.delete)

	coh := &couponHandler{svc: s.Coupons}
	g = api.Group("/coupon", auth)
	g.Get("/", anyone, coh.list)
	g.Get("/:id", anyone, coh.get)
	g.Post("/", admin, coh.create)
	g.Patch("/:id", admin, coh.update)
	g.Delete("/:id", admin, coh.delete)

	th := &taxHandler{svc: s.Tax}
	g = api.Group("/tax", auth, admin)
	g.Post("/", th.save)
	g.Get("/", th.get)
	g.Delete("/", th.reset)

	ph := &productHandler{svc: s.Products}
	g = api.Group("/product")
	g.Get("/", ph.list)
	g.Get("/:id", ph.get)
	g.Post("/", auth, admin, ph.create)
	g.Patch("/:id", auth, admin, ph.update)
	g.Delete("/:id", auth, admin, ph.delete)
	g.Post("/:id/images", auth, admin, ph.uploadImage)

	cah := &cartHandler{svc: s.Cart}
	g = api.Group("/cart", auth, customer)
	g.Post("/coupon", cah.applyCoupon)
	g.Post("/:productId", cah.addItem)
	g.Get("/", cah.get)
	g.Patch("/:itemId", cah.updateItem)
	g.Delete("/", cah.clear)
	g.Delete("/:itemId", cah.removeItem)

	oh := &orderHandler{svc: s.Orders}
	g = api.Group("/order", auth)
	g.Get("/admin/all", admin, oh.adminList)
	g.Get("/admin/stats", admin, oh.stats)
	g.Patch("/:id/deliver", admin, oh.markDelivered)
	g.Patch("/:id/paid", admin, oh.markPaid)
	g.Post("/", customer, oh.create)
	g.Get("/", customer, oh.listMine)
	g.Get("/:id", anyone, oh.get)
	g.Delete("/:id", customer, oh.cancel)
}
