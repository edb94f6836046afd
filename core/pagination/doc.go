// Package pagination provides iterators for splitting result lists into pages.
//
// # ArrayIterator
//
// ArrayIterator holds the complete list and hands out pages of it:
//
//	it := pagination.NewArrayIterator(users)
//	it.SetPerPage(20)
//	second := it.ForPage(2)
//
// # Section
//
// Section holds only the items of the current page plus the size of the whole
// result set, which is what a database-backed listing usually has. It encodes
// to the JSON shape consumed by the frontend:
//
//	{"lastPage":4,"hasPrev":true,"hasNext":true,"totalEntries":20,
//	 "itemsPerPage":5,"page":3,"entries":[...]}
//
// # Adapters
//
// LoadSection fills a Section from a gorm query, and FromRequest/Respond bind
// it to a fiber request:
//
//	app.Get("/users", func(c *fiber.Ctx) error {
//	    page, perPage := pagination.FromRequest(c, cfg.Pagination)
//	    s, err := pagination.LoadSection[User](c.UserContext(), db, page, perPage)
//	    if err != nil {
//	        return err
//	    }
//	    return pagination.Respond(c, s)
//	})
package pagination
