// Package docs provides the Swagger documentation for the API.
package docs

// @title           Image Analysis API
// @version         1.0
// @description     An API that analyzes hand-drawn mathematical expressions with a generative vision model. Accepts a base64 data-URL image plus a mapping of user-defined variables and returns the extracted expressions with their computed results.

// @contact.name   API Support
// @contact.url    https://github.com/aashari/go-image-analysis-api

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @BasePath  /
