package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Rolo3650/sicove-api/internal/middleware"
	"github.com/Rolo3650/sicove-api/internal/model"
	"github.com/Rolo3650/sicove-api/internal/repository"
	"github.com/Rolo3650/sicove-api/internal/store"
	"github.com/Rolo3650/sicove-api/pkg/jwtutil"
)

// BasePath prefixes every entity route.
const BasePath = "/api/v1"

// Dependencies carries what the routes need from the composition root.
type Dependencies struct {
	Store      store.Store
	JWT        *jwtutil.JWTUtil
	BcryptCost int
}

// entityRoute binds one entity prefix to its handler and input factories. The
// table drives both route registration and the generated API document.
type entityRoute struct {
	Prefix    string
	Desc      repository.Descriptor
	Handler   *CRUDHandler
	NewCreate func() interface{}
	NewUpdate func() interface{}
}

func crud(prefix string, repo entityRepo, newCreate, newUpdate func() interface{}) entityRoute {
	return entityRoute{
		Prefix:    prefix,
		Desc:      repo.Descriptor(),
		Handler:   NewCRUDHandler(repo, newCreate, newUpdate),
		NewCreate: newCreate,
		NewUpdate: newUpdate,
	}
}

func entityRoutes(deps Dependencies) []entityRoute {
	s := deps.Store
	return []entityRoute{
		crud("/country", repository.New(s, repository.Countries),
			func() interface{} { return &model.CreateCountry{} },
			func() interface{} { return &model.UpdateCountry{} }),
		crud("/state", repository.New(s, repository.States),
			func() interface{} { return &model.CreateState{} },
			func() interface{} { return &model.UpdateState{} }),
		crud("/municipality", repository.New(s, repository.Municipalities),
			func() interface{} { return &model.CreateMunicipality{} },
			func() interface{} { return &model.UpdateMunicipality{} }),
		crud("/city", repository.New(s, repository.Cities),
			func() interface{} { return &model.CreateCity{} },
			func() interface{} { return &model.UpdateCity{} }),
		crud("/colony", repository.New(s, repository.Colonies),
			func() interface{} { return &model.CreateColony{} },
			func() interface{} { return &model.UpdateColony{} }),
		crud("/road", repository.New(s, repository.Roads),
			func() interface{} { return &model.CreateRoad{} },
			func() interface{} { return &model.UpdateRoad{} }),
		crud("/branch", repository.NewBranchRepository(s),
			func() interface{} { return &model.CreateBranch{} },
			func() interface{} { return &model.UpdateBranch{} }),
		crud("/branchSection", repository.New(s, repository.BranchSections),
			func() interface{} { return &model.CreateBranchSection{} },
			func() interface{} { return &model.UpdateBranchSection{} }),
		crud("/brand", repository.New(s, repository.Brands),
			func() interface{} { return &model.CreateBrand{} },
			func() interface{} { return &model.UpdateBrand{} }),
		crud("/subBrand", repository.New(s, repository.SubBrands),
			func() interface{} { return &model.CreateSubBrand{} },
			func() interface{} { return &model.UpdateSubBrand{} }),
		crud("/model", repository.New(s, repository.Models),
			func() interface{} { return &model.CreateModel{} },
			func() interface{} { return &model.UpdateModel{} }),
		crud("/version", repository.New(s, repository.Versions),
			func() interface{} { return &model.CreateVersion{} },
			func() interface{} { return &model.UpdateVersion{} }),
		crud("/vehicle", repository.New(s, repository.Vehicles),
			func() interface{} { return &model.CreateVehicle{} },
			func() interface{} { return &model.UpdateVehicle{} }),
		crud("/customRegistration", repository.New(s, repository.CustomRegistrations),
			func() interface{} { return &model.CreateCustomRegistration{} },
			func() interface{} { return &model.UpdateCustomRegistration{} }),
		crud("/insuranceRegistration", repository.New(s, repository.InsuranceRegistrations),
			func() interface{} { return &model.CreateInsuranceRegistration{} },
			func() interface{} { return &model.UpdateInsuranceRegistration{} }),
		crud("/verification", repository.New(s, repository.Verifications),
			func() interface{} { return &model.CreateVerification{} },
			func() interface{} { return &model.UpdateVerification{} }),
		crud("/branchRegistration", repository.New(s, repository.BranchRegistrations),
			func() interface{} { return &model.CreateBranchRegistration{} },
			func() interface{} { return &model.UpdateBranchRegistration{} }),
		crud("/user", repository.NewUserRepository(s, deps.BcryptCost),
			func() interface{} { return &model.CreateUser{} },
			func() interface{} { return &model.UpdateUser{} }),
	}
}

// Register mounts every entity route under BasePath behind the token
// middleware; only login passes unauthenticated.
func Register(e *echo.Echo, deps Dependencies) {
	routes := entityRoutes(deps)

	skipLogin := func(c echo.Context) bool {
		return c.Request().Method == http.MethodPost &&
			strings.HasPrefix(c.Path(), BasePath+"/user/login")
	}

	api := e.Group(BasePath, middleware.JWTAuth(deps.JWT, skipLogin))

	for _, route := range routes {
		g := api.Group(route.Prefix)
		g.GET("", route.Handler.List)
		g.GET("/byId/:id", route.Handler.GetByID)
		g.POST("", route.Handler.Create)
		g.PUT("/byId/:id", route.Handler.Update)
		g.DELETE("/byId/:id", route.Handler.Delete)
	}

	userRepo := repository.NewUserRepository(deps.Store, deps.BcryptCost)
	userHandler := NewUserHandler(userRepo, deps.JWT)
	api.POST("/user/login", userHandler.Login)

	branchRepo := repository.NewBranchRepository(deps.Store)
	branchHandler := NewBranchHandler(branchRepo)
	api.PUT("/branch/assignVehiclesToBranch/:id", branchHandler.AssignVehicles)

	e.GET("/api/docs", APIDocument(routes))
}
