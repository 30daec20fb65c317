// Package graphql provides the GraphQL transport layer: schema, resolvers,
// and error handling for the auth API. The executable schema in generated/
// is produced by gqlgen from schema.graphql; the object types are hand-written
// in model/ and bound via gqlgen.yml.
package graphql

//go:generate go run github.com/99designs/gqlgen generate
