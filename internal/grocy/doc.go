// Package grocy provides an HTTP client for the Grocy stock-tracking API.
//
// The panel consumes a deliberately small slice of the API:
//
//	GET  /api/objects/products           product catalog (startup, id range)
//	GET  /api/stock/products/{id}        current stock view of one product
//	POST /api/stock/products/{id}/consume  book one unit out of stock
//	POST /api/stock/products/{id}/add      book one unit into stock
//
// # Usage Example
//
//	client := grocy.NewClient("http://192.168.1.20:9283", apiKey)
//
//	products, err := client.Products(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := client.Consume(ctx, 43); err != nil {
//	    log.Fatal(err)
//	}
//
// # Errors
//
// All failures are returned as *ServiceError with a category (network, HTTP
// status, parse) and are treated as fatal by the panel: there is no retry
// logic because the panel's job is to show live truth, and stale-but-alive is
// considered worse than dead-and-restarted.
//
// # Authentication
//
// Every request carries the static GROCY-API-KEY header. The key is supplied
// through external configuration (the GROCY_API_KEY environment variable) and
// is never embedded in source.
package grocy
