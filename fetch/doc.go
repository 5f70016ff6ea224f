// Package fetch retrieves JSON documents over HTTP and reports the outcome as
// a typed Response.
//
// A Response never carries a Go error: failures are flattened into
// Success=false plus an error message, the shape commonly returned by JSON
// APIs. Callers that want the error value itself use FetchResult, which
// returns a result.Result.
//
//	c := fetch.New("https://api.example.com")
//	res := fetch.Get[User](ctx, c, "/user/1")
//	if res.Success {
//		fmt.Println(res.Data.Name)
//	}
//
// Import
//
//	"github.com/sghaida/genlab/fetch"
package fetch
