// Package docs provides OpenAPI documentation for the Model Registry API
//
//	@title			Model Registry API
//	@version		0.1
//	@description	API for storing machine learning models in MongoDB GridFS and managing registry users.
//	@description	Models are stored with metadata (architecture, version, project) and addressed by
//	@description	their GridFS ObjectID. User management operates directly on MongoDB users.
//	@description
//	@description	Authentication is required by default. Use HTTP Basic authentication with the
//	@description	registry's MongoDB credentials.
//
//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html
//
// @securityDefinitions.basic BasicAuth
// @description HTTP Basic authentication using the registry's MongoDB credentials
//
//	@tag.name	models
//	@tag.description	Model storage, lookup, and retrieval
//
//	@tag.name	users
//	@tag.description	MongoDB user management and password generation
//
//	@tag.name	system
//	@tag.description	System health and version information
package main
