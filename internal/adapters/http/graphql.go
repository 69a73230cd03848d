package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
)

// buildSchema creates the GraphQL schema wired to our services. The
// schema is read-only: mutations go through the REST commands so that
// undo bookkeeping has a single entry point.
func buildSchema(deps *Dependencies) (graphql.Schema, error) {
	geoPointType := graphql.NewObject(graphql.ObjectConfig{
		Name: "GeoPoint",
		Fields: graphql.Fields{
			"lat": &graphql.Field{Type: graphql.Float},
			"lon": &graphql.Field{Type: graphql.Float},
		},
	})

	labelType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Label",
		Fields: graphql.Fields{
			"position": &graphql.Field{Type: geoPointType},
			"text":     &graphql.Field{Type: graphql.String},
		},
	})

	pathRowType := graphql.NewObject(graphql.ObjectConfig{
		Name: "PathRow",
		Fields: graphql.Fields{
			"id":              &graphql.Field{Type: graphql.String},
			"sequence_number": &graphql.Field{Type: graphql.Int},
			"color":           &graphql.Field{Type: graphql.String},
			"length_feet":     &graphql.Field{Type: graphql.Float},
			"time_label":      &graphql.Field{Type: graphql.String},
		},
	})

	pathType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Path",
		Fields: graphql.Fields{
			"id":              &graphql.Field{Type: graphql.String},
			"sequence_number": &graphql.Field{Type: graphql.Int},
			"color":           &graphql.Field{Type: graphql.String},
			"vertices":        &graphql.Field{Type: graphql.NewList(geoPointType)},
			"labels":          &graphql.Field{Type: graphql.NewList(labelType)},
		},
	})

	summaryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Summary",
		Fields: graphql.Fields{
			"distance": &graphql.Field{Type: graphql.String},
			"time":     &graphql.Field{Type: graphql.String},
		},
	})

	locationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Location",
		Fields: graphql.Fields{
			"slug":     &graphql.Field{Type: graphql.String},
			"name":     &graphql.Field{Type: graphql.String},
			"location": &graphql.Field{Type: geoPointType},
			"zoom":     &graphql.Field{Type: graphql.Int},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"paths": &graphql.Field{
				Type:        graphql.NewList(pathRowType),
				Description: "Sidebar rows for all drawn paths",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Annotations.ListPaths(), nil
				},
			},
			"path": &graphql.Field{
				Type:        pathType,
				Description: "A single path with vertices and labels",
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id := p.Args["id"].(string)
					path := deps.Annotations.GetPath(id)
					if path == nil {
						return nil, nil
					}
					return path, nil
				},
			},
			"summary": &graphql.Field{
				Type:        summaryType,
				Description: "Combined distance and walking time across all paths",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Annotations.Summary(), nil
				},
			},
			"locations": &graphql.Field{
				Type:        graphql.NewList(locationType),
				Description: "Named locations used to recenter the map",
				Args: graphql.FieldConfigArgument{
					"query": &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					q := p.Args["query"].(string)
					return deps.Locations.Search(q), nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: queryType,
	})
}

// GraphQLHandler serves the GraphQL endpoint.
func GraphQLHandler(deps *Dependencies) fiber.Handler {
	schema, err := buildSchema(deps)
	if err != nil {
		// This would be a programming error in the schema definition
		panic("graphql schema build: " + err.Error())
	}

	type gqlRequest struct {
		Query         string                 `json:"query"`
		OperationName string                 `json:"operationName"`
		Variables     map[string]interface{} `json:"variables"`
	}

	return func(c *fiber.Ctx) error {
		var req gqlRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        c.Context(),
		})

		return c.JSON(result)
	}
}
