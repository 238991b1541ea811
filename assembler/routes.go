package assembler

import (
	"fmt"

	"github.com/introspec-io/introspec/resource"
	"github.com/introspec-io/introspec/spec"
	"github.com/introspec-io/introspec/specerrors"
)

// pathsByRoutes groups a resource's declared routes by path suffix and
// merges them into per-action operations. Routes below the configured
// support level are dropped; routes at exactly the deprecated tier are kept
// and flagged. An unknown action is fatal.
func (a *run) pathsByRoutes(routes []resource.Route) (map[string]*spec.PathItem, error) {
	res := make(map[string]*spec.PathItem)

	for _, route := range routes {
		item := res[route.Path]
		if item == nil {
			item = &spec.PathItem{}
			res[route.Path] = item
		}

		// Routes that never declared a tier are always documented; the
		// threshold applies only to declared levels.
		if route.SupportLevel != resource.Unset && route.SupportLevel < a.cfg.supportLevel {
			continue
		}

		op, err := a.operationForRoute(route)
		if err != nil {
			return nil, err
		}

		switch route.Action {
		case resource.GET:
			item.Get = mergeOperation(item.Get, op)
		case resource.PUT:
			item.Put = mergeOperation(item.Put, op)
		case resource.POST:
			item.Post = mergeOperation(item.Post, op)
		case resource.PATCH:
			item.Patch = mergeOperation(item.Patch, op)
		case resource.DELETE:
			item.Delete = mergeOperation(item.Delete, op)
		case resource.OPTIONS:
			item.Options = mergeOperation(item.Options, op)
		default:
			return nil, &specerrors.ActionError{
				Action:    string(route.Action),
				Resource:  a.classify.resourcePath,
				RoutePath: route.Path,
			}
		}
	}
	return res, nil
}

// operationForRoute builds one operation from one route declaration.
//
// One operation cannot carry alternative request payload types, so when a
// route declares several BODY parameters they collapse into a single
// synthetic object body.
// Reference: https://github.com/OAI/OpenAPI-Specification/issues/146
func (a *run) operationForRoute(route resource.Route) (*spec.Operation, error) {
	op := &spec.Operation{
		Tags:        []string{a.tag.Name},
		Description: route.Description,
		Deprecated:  route.SupportLevel == resource.Deprecated,
	}

	var (
		params     []*spec.Parameter
		responses  map[string]*spec.Response
		consumes   []string
		produces   []string
		bodyParams []resource.RouteParameter
	)

	for _, p := range route.Parameters {
		switch p.Role {
		case resource.RoleBody:
			bodyParams = append(bodyParams, p)
		case resource.RolePath:
			params = append(params, a.classify.paramPath(p))
		case resource.RoleQuery:
			params = append(params, a.classify.paramQuery(p, route))
		case resource.RoleResponse:
			if responses == nil {
				responses = make(map[string]*spec.Response)
			}
			responses[p.Name] = a.classify.paramResponse(p)
		case resource.RoleConsumes:
			consumes = append(consumes, p.Name)
		case resource.RoleProduces:
			produces = append(produces, p.Name)
		default:
			a.cfg.logger.Warn("skipping parameter with unknown role",
				"role", string(p.Role), "name", p.Name, "resource", a.classify.resourcePath)
		}
	}

	switch {
	case len(bodyParams) > 1:
		params = append(params, a.classify.paramMultiBody(bodyParams, route))
	case len(bodyParams) == 1:
		token := bodyParams[0].Type
		if token == "" {
			token = route.RequestKind
		}
		body := a.classify.paramBody(token)
		body.Description = bodyParams[0].Description
		body.Required = bodyParams[0].Required
		params = append(params, body)
	case route.RequestKind != "":
		params = append(params, a.classify.paramBody(route.RequestKind))
	}

	op.Parameters = params
	if len(responses) > 0 {
		// explicit responses fully replace the defaults
		op.Responses = responses
	} else {
		op.Responses = map[string]*spec.Response{
			"200": a.classify.responseOK(route.ResponseKind),
			"404": a.classify.responseError(),
		}
	}
	op.Consumes = consumes
	op.Produces = produces
	return op, nil
}

// mergeOperation folds src into dst when two routes share a path and action:
// parameters concatenate in declaration order and non-blank descriptions
// join with " / ". The first route's responses and media types win.
func mergeOperation(dst, src *spec.Operation) *spec.Operation {
	if dst == nil {
		return src
	}
	dst.Parameters = append(dst.Parameters, src.Parameters...)
	switch {
	case dst.Description != "" && src.Description != "":
		dst.Description = fmt.Sprintf("%s / %s", dst.Description, src.Description)
	case src.Description != "":
		dst.Description = src.Description
	}
	return dst
}
