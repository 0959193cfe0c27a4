// Package versions answers "how many stored versions exist for resource X?".
//
// Versions of a resource are the objects stored under the "<name>/" key prefix
// of the configured bucket.
//
// # Validation
//
// ValidateName accepts names of 2 to 32 characters made of letters and digits
// only. Every caller must validate before counting; the service does not.
//
// # Counting
//
// Service.CountVersions pages through the bucket listing until it is exhausted
// and returns the number of listed objects. Zero matches is a count of 0.
//
// # HTTP Endpoints
//
//   - GET /resource_version_amount/:resource_name : 200 with the decimal count,
//     400 with the validation message, 500 with a generic body.
package versions
