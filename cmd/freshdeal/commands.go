package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"freshdeal/config"
	"freshdeal/internal/domain/entity"
	domainerrors "freshdeal/internal/domain/errors"
	"freshdeal/internal/domain/service"
	"freshdeal/internal/errors"
	"freshdeal/internal/store"
	"freshdeal/internal/usecase"
	"freshdeal/internal/usecase/impl"
	"freshdeal/internal/util"
	"freshdeal/internal/view"

	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

// cliDeps holds everything a command may call, injected by Fx.
type cliDeps struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	Store       *store.Store
	Queue       *store.TaskQueue
	Geocoder    service.Geocoder
	Users       usecase.UserUsecase
	Addresses   usecase.AddressUsecase
	Restaurants usecase.RestaurantUsecase
	Carts       usecase.CartUsecase
	Purchases   usecase.PurchaseUsecase
}

type cli struct {
	cfg         *config.Config
	logger      *slog.Logger
	store       *store.Store
	queue       *store.TaskQueue
	geocoder    service.Geocoder
	users       usecase.UserUsecase
	addresses   usecase.AddressUsecase
	restaurants usecase.RestaurantUsecase
	carts       usecase.CartUsecase
	purchases   usecase.PurchaseUsecase

	out io.Writer
	in  *bufio.Reader
}

func newCLI(deps cliDeps, out io.Writer, in io.Reader) *cli {
	return &cli{
		cfg:         deps.Config,
		logger:      deps.Logger,
		store:       deps.Store,
		queue:       deps.Queue,
		geocoder:    deps.Geocoder,
		users:       deps.Users,
		addresses:   deps.Addresses,
		restaurants: deps.Restaurants,
		carts:       deps.Carts,
		purchases:   deps.Purchases,
		out:         out,
		in:          bufio.NewReader(in),
	}
}

// commandFlags is the parsed flag set of one invocation.
type commandFlags struct {
	fs      *flag.FlagSet
	strings map[string]*string
	ints    map[string]*int64
	floats  map[string]*float64
	bools   map[string]*bool
}

func (f commandFlags) str(name string) string { return *f.strings[name] }

func (f commandFlags) num(name string) int64 { return *f.ints[name] }

func (f commandFlags) float(name string) float64 { return *f.floats[name] }

func (f commandFlags) on(name string) bool { return *f.bools[name] }

type flagDef struct {
	name  string
	kind  string // "string", "int", "float" or "bool"
	value any
	usage string
}

type command struct {
	name         string
	summary      string
	needsSession bool
	options      []flagDef
	run          func(ctx context.Context, c *cli, f commandFlags) error
}

func (cmd *command) flags() commandFlags {
	f := commandFlags{
		fs:      flag.NewFlagSet(cmd.name, flag.ContinueOnError),
		strings: map[string]*string{},
		ints:    map[string]*int64{},
		floats:  map[string]*float64{},
		bools:   map[string]*bool{},
	}
	for _, s := range cmd.options {
		switch s.kind {
		case "string":
			f.strings[s.name] = f.fs.String(s.name, s.value.(string), s.usage)
		case "int":
			f.ints[s.name] = f.fs.Int64(s.name, int64(s.value.(int)), s.usage)
		case "float":
			f.floats[s.name] = f.fs.Float64(s.name, s.value.(float64), s.usage)
		case "bool":
			f.bools[s.name] = f.fs.Bool(s.name, s.value.(bool), s.usage)
		}
	}

	return f
}

var commands = []*command{
	{
		name: "login", summary: "Log in and keep the session",
		options: []flagDef{
			{"email", "string", "", "Account email"},
			{"phone", "string", "", "Account phone number, instead of email"},
			{"password", "string", "", "Account password"},
		},
		run: runLogin,
	},
	{
		name: "register", summary: "Create an account",
		options: []flagDef{
			{"name", "string", "", "Display name"},
			{"email", "string", "", "Account email"},
			{"phone", "string", "", "Phone number"},
			{"password", "string", "", "Password, at least 6 characters"},
			{"owner", "bool", false, "Register a restaurant owner"},
		},
		run: runRegister,
	},
	{name: "logout", summary: "Forget the session and clear all state", needsSession: true, run: runLogout},
	{name: "whoami", summary: "Show the profile, saved addresses and savings", needsSession: true, run: runWhoami},
	{
		name: "address-add", summary: "Save a delivery address", needsSession: true,
		options: []flagDef{
			{"title", "string", "", "Label such as Home"},
			{"street", "string", "", "Street and building"},
			{"district", "string", "", "District"},
			{"province", "string", "", "Province"},
			{"lat", "float", 0.0, "Latitude"},
			{"lon", "float", 0.0, "Longitude"},
			{"locate", "bool", false, "Fill the postal fields from the coordinates"},
		},
		run: runAddressAdd,
	},
	{
		name: "locate", summary: "Resolve a map pin into an address",
		options: []flagDef{
			{"lat", "float", 0.0, "Latitude"},
			{"lon", "float", 0.0, "Longitude"},
		},
		run: runLocate,
	},
	{
		name: "nearby", summary: "List restaurants around the selected address", needsSession: true,
		options: []flagDef{
			{"address", "string", "", "Address id to select, defaults to the first saved one"},
			{"radius", "float", 0.0, "Search radius in km"},
			{"delivery", "bool", false, "Toggle the delivery filter"},
			{"pickup", "bool", false, "Toggle the pickup filter"},
			{"under30", "bool", false, "Only restaurants reachable within 30 minutes"},
		},
		run: runNearby,
	},
	{
		name: "listings", summary: "Show the listings of a restaurant", needsSession: true,
		options: []flagDef{
			{"restaurant", "int", 0, "Restaurant id"},
			{"delivery", "bool", false, "Show delivery prices"},
		},
		run: runListings,
	},
	{name: "cart", summary: "Show the cart", needsSession: true, run: runCart},
	{
		name: "cart-add", summary: "Add one unit of a listing to the cart", needsSession: true,
		options: []flagDef{
			{"restaurant", "int", 0, "Restaurant id"},
			{"listing", "int", 0, "Listing id"},
			{"yes", "bool", false, "Replace a cart from another restaurant without asking"},
		},
		run: runCartAdd,
	},
	{
		name: "cart-remove", summary: "Remove one unit of a listing", needsSession: true,
		options: []flagDef{{"listing", "int", 0, "Listing id"}},
		run:     runCartRemove,
	},
	{name: "cart-reset", summary: "Empty the cart", needsSession: true, run: runCartReset},
	{
		name: "order", summary: "Place the cart", needsSession: true,
		options: []flagDef{
			{"delivery", "bool", false, "Deliver to the selected address instead of pickup"},
			{"address", "string", "", "Address id to deliver to"},
			{"notes", "string", "", "Notes for the restaurant"},
		},
		run: runOrder,
	},
	{
		name: "orders", summary: "List active orders, or the history with -page", needsSession: true,
		options: []flagDef{{"page", "int", 0, "History page, starting at 1"}},
		run:     runOrders,
	},
	{
		name: "respond", summary: "Accept or reject an order (owner)", needsSession: true,
		options: []flagDef{
			{"id", "int", 0, "Purchase id"},
			{"decision", "string", string(entity.DecisionAccept), "accept or reject"},
		},
		run: runRespond,
	},
	{
		name: "pickup-code", summary: "Write the pickup QR code of an accepted order", needsSession: true,
		options: []flagDef{
			{"id", "int", 0, "Purchase id"},
			{"out", "string", "pickup.png", "Output PNG file"},
		},
		run: runPickupCode,
	},
	{
		name: "rate", summary: "Review a completed order", needsSession: true,
		options: []flagDef{
			{"restaurant", "int", 0, "Restaurant id"},
			{"purchase", "int", 0, "Purchase id"},
			{"rating", "float", 5.0, "Rating from 1 to 5"},
			{"comment", "string", "", "Comment"},
		},
		run: runRate,
	},
	{
		name: "favorite", summary: "Mark or unmark a favorite restaurant", needsSession: true,
		options: []flagDef{
			{"restaurant", "int", 0, "Restaurant id"},
			{"remove", "bool", false, "Remove instead of add"},
		},
		run: runFavorite,
	},
}

func lookupCommand(name string) (*command, bool) {
	for _, cmd := range commands {
		if cmd.name == name {
			return cmd, true
		}
	}

	return nil, false
}

func printUsage() {
	fmt.Println("Usage: freshdeal <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	for _, cmd := range commands {
		fmt.Printf("  %-12s %s\n", cmd.name, cmd.summary)
	}
	fmt.Println("")
	fmt.Println("Use 'freshdeal <command> -h' for more information about a command.")
}

func (c *cli) table() *tabwriter.Writer {
	return tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
}

func runLogin(ctx context.Context, c *cli, f commandFlags) error {
	err := c.users.Login(ctx, usecase.LoginInput{
		Email:       f.str("email"),
		PhoneNumber: f.str("phone"),
		Password:    f.str("password"),
	})
	if err != nil {
		return err
	}

	user, err := c.users.FetchUserData(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Logged in as %s\n", user.Name)

	return nil
}

func runRegister(ctx context.Context, c *cli, f commandFlags) error {
	role := entity.RoleCustomer
	if f.on("owner") {
		role = entity.RoleRestaurant
	}
	err := c.users.Register(ctx, usecase.RegisterInput{
		Name:        f.str("name"),
		Email:       f.str("email"),
		PhoneNumber: f.str("phone"),
		Password:    f.str("password"),
		Role:        role,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Account created, you can log in now")

	return nil
}

func runLogout(ctx context.Context, c *cli, _ commandFlags) error {
	if err := c.users.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Logged out")

	return nil
}

func runWhoami(ctx context.Context, c *cli, _ commandFlags) error {
	user, err := c.users.FetchUserData(ctx)
	if err != nil {
		return err
	}
	stats, err := c.users.FetchStats(ctx)
	if err != nil {
		return err
	}
	achievements, err := c.users.FetchAchievements(ctx)
	if err != nil {
		return err
	}
	if _, err := c.users.FetchRankings(ctx); err != nil {
		return err
	}

	state := c.store.State()
	fmt.Fprintf(c.out, "%s <%s> (%s)\n", user.Name, user.Email, user.Role)
	fmt.Fprintf(c.out, "Saved %s TL and %s kg of food\n", stats.MoneySaved.StringFixed(2), stats.FoodSaved.StringFixed(1))
	if own := state.User.OwnRank; own != nil {
		fmt.Fprintf(c.out, "Rank #%d\n", own.Rank)
	}

	w := c.table()
	fmt.Fprintln(w, "\nADDRESS\tTITLE\tSTREET\tSELECTED")
	for _, a := range state.Address.Addresses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", a.ID, a.Title, a.Street, a.ID == state.Address.SelectedAddressID)
	}
	fmt.Fprintln(w, "\nACHIEVEMENT\tUNLOCKED\t")
	for _, a := range view.SortAchievements(achievements) {
		fmt.Fprintf(w, "%s\t%t\t\n", a.Name, a.Unlocked)
	}

	return w.Flush()
}

func runAddressAdd(ctx context.Context, c *cli, f commandFlags) error {
	input := usecase.AddAddressInput{
		Title:     f.str("title"),
		Street:    f.str("street"),
		District:  f.str("district"),
		Province:  f.str("province"),
		Latitude:  f.float("lat"),
		Longitude: f.float("lon"),
	}
	if f.on("locate") {
		draft, err := c.geocoder.Reverse(ctx, orb.Point{input.Longitude, input.Latitude})
		if err != nil {
			return err
		}
		input.Neighborhood = draft.Neighborhood
		input.Country = draft.Country
		input.PostalCode = draft.PostalCode
		input.Street = firstNonEmpty(input.Street, draft.Street)
		input.District = firstNonEmpty(input.District, draft.District)
		input.Province = firstNonEmpty(input.Province, draft.Province)
	}

	if _, err := c.users.FetchUserData(ctx); err != nil {
		return err
	}
	added, err := c.addresses.AddAddress(ctx, input)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Saved address %s (%s)\n", added.ID, added.Title)

	return nil
}

// runLocate feeds the pin through the debounced lookup the map screen uses and
// prints the draft it settles on.
func runLocate(_ context.Context, c *cli, f commandFlags) error {
	type result struct {
		draft *entity.Address
		err   error
	}
	done := make(chan result, 1)

	lookup := impl.NewAddressLookup(c.geocoder, c.cfg.Debounce.Window, func(draft *entity.Address, err error) {
		select {
		case done <- result{draft, err}:
		default:
		}
	}, c.logger)
	defer lookup.Close()

	lookup.Drag(orb.Point{f.float("lon"), f.float("lat")})

	select {
	case r := <-done:
		if r.err != nil {
			return r.err
		}
		d := r.draft
		fmt.Fprintln(c.out, joinNonEmpty(", ", d.Street, d.Neighborhood, d.District, d.Province, d.PostalCode, d.Country))

		return nil
	case <-time.After(c.cfg.Debounce.Window + c.cfg.Geocoder.Timeout):
		return errors.New("address lookup timed out")
	}
}

func runNearby(ctx context.Context, c *cli, f commandFlags) error {
	if radius := f.float("radius"); radius > 0 {
		if err := c.addresses.SetSearchRadius(radius); err != nil {
			return err
		}
	}

	// Loading the profile selects the first address, which triggers the refetch.
	if _, err := c.users.FetchUserData(ctx); err != nil {
		return err
	}
	if id := f.str("address"); id != "" {
		if err := c.addresses.SelectAddress(id); err != nil {
			return err
		}
	}
	if _, err := c.restaurants.FetchFavorites(ctx); err != nil {
		return err
	}
	c.queue.Wait()

	state := c.store.State()
	if state.Restaurant.Proximity.Error != "" {
		return errors.New(state.Restaurant.Proximity.Error)
	}

	filters := view.DefaultFilters()
	for _, id := range []view.FilterID{view.FilterPickup, view.FilterDelivery, view.FilterUnder30} {
		if f.on(string(id)) {
			filters = filters.Toggle(id)
		}
	}

	w := c.table()
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tDISTANCE\tPICKUP\tDELIVERY\tLISTINGS\tFAVORITE")
	for _, r := range view.Restaurants(state, filters) {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\t%t\t%d\t%t\n",
			r.ID, r.Name, r.Category, util.FormatDistance(r.DistanceKm), r.Pickup, r.Delivery, r.ListingCount, state.Restaurant.IsFavorite(r.ID))
	}

	return w.Flush()
}

func runListings(ctx context.Context, c *cli, f commandFlags) error {
	if f.on("delivery") {
		c.restaurants.SetFulfillmentMode(store.ModeDelivery)
	}
	if _, err := c.carts.FetchCart(ctx); err != nil {
		return err
	}
	if _, err := c.restaurants.FetchListings(ctx, f.num("restaurant")); err != nil {
		return err
	}

	now := time.Now()
	w := c.table()
	fmt.Fprintln(w, "ID\tTITLE\tPRICE\tSAVE\tFRESH\tLEFT\tIN CART\tEAT BEFORE")
	for _, card := range view.ListingCards(c.store.State()) {
		before := view.ConsumeBefore(card.Listing, now)
		fmt.Fprintf(w, "%d\t%s\t%s\t%d%%\t%s\t%d\t%d\t%s (%s)\n",
			card.Listing.ID, card.Listing.Title, card.Price.StringFixed(2), card.SavingsPercent, card.Band,
			card.Listing.Count, card.InCart, before.Format("15:04"), util.FormatRemaining(before, now))
	}

	return w.Flush()
}

func runCart(ctx context.Context, c *cli, _ commandFlags) error {
	items, err := c.carts.FetchCart(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(c.out, "Cart is empty")

		return nil
	}

	w := c.table()
	fmt.Fprintln(w, "LISTING\tTITLE\tCOUNT")
	for _, item := range items {
		fmt.Fprintf(w, "%d\t%s\t%d\n", item.ListingID, item.Title, item.Count)
	}

	return w.Flush()
}

func runCartAdd(ctx context.Context, c *cli, f commandFlags) error {
	if _, err := c.carts.FetchCart(ctx); err != nil {
		return err
	}
	if _, err := c.restaurants.FetchListings(ctx, f.num("restaurant")); err != nil {
		return err
	}
	listing, ok := c.store.State().Restaurant.Listing(f.num("listing"))
	if !ok {
		return errors.Errorf("listing %d is not offered by restaurant %d", f.num("listing"), f.num("restaurant"))
	}

	confirm := usecase.ConfirmFunc(func(_ context.Context, current, next int64) bool {
		if f.on("yes") {
			return true
		}
		fmt.Fprintf(c.out, "Your cart holds items from restaurant %d. Replace them with restaurant %d? [y/N] ", current, next)
		answer, _ := c.in.ReadString('\n')

		return strings.EqualFold(strings.TrimSpace(answer), "y")
	})

	item, err := c.carts.AddToCart(ctx, usecase.AddToCartInput{Listing: listing, Confirmer: confirm})
	if errors.Is(err, domainerrors.ErrCartRestaurantConflict) {
		fmt.Fprintln(c.out, "Cart left unchanged")

		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s x%d in cart\n", item.Title, item.Count)

	return nil
}

func runCartRemove(ctx context.Context, c *cli, f commandFlags) error {
	if _, err := c.carts.FetchCart(ctx); err != nil {
		return err
	}
	if err := c.carts.RemoveFromCart(ctx, f.num("listing")); err != nil {
		return err
	}

	return runCart(ctx, c, f)
}

func runCartReset(ctx context.Context, c *cli, _ commandFlags) error {
	if err := c.carts.ResetCart(ctx); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Cart emptied")

	return nil
}

func runOrder(ctx context.Context, c *cli, f commandFlags) error {
	if f.on("delivery") {
		if _, err := c.users.FetchUserData(ctx); err != nil {
			return err
		}
		if id := f.str("address"); id != "" {
			if err := c.addresses.SelectAddress(id); err != nil {
				return err
			}
		}
	}

	purchases, err := c.purchases.CreateOrder(ctx, usecase.CreateOrderInput{
		IsDelivery: f.on("delivery"),
		Notes:      f.str("notes"),
	})
	if err != nil {
		return err
	}

	return c.printPurchases(purchases)
}

func runOrders(ctx context.Context, c *cli, f commandFlags) error {
	var (
		purchases []entity.Purchase
		err       error
	)
	if page := int(f.num("page")); page > 0 {
		purchases, err = c.purchases.FetchPreviousOrders(ctx, page)
	} else {
		purchases, err = c.purchases.FetchActiveOrders(ctx)
	}
	if err != nil {
		return err
	}

	return c.printPurchases(purchases)
}

func runRespond(ctx context.Context, c *cli, f commandFlags) error {
	purchase, err := c.purchases.RespondToOrder(ctx, f.num("id"), entity.Decision(f.str("decision")))
	if err != nil {
		return err
	}

	return c.printPurchases([]entity.Purchase{*purchase})
}

func runPickupCode(ctx context.Context, c *cli, f commandFlags) error {
	png, err := c.purchases.PickupCode(ctx, f.num("id"))
	if err != nil {
		return err
	}
	path := f.str("out")
	if err := os.WriteFile(path, png, 0o600); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	fmt.Fprintf(c.out, "Wrote %s (%d bytes)\n", path, len(png))

	return nil
}

func runRate(ctx context.Context, c *cli, f commandFlags) error {
	rated, err := c.purchases.HasRating(ctx, f.num("purchase"))
	if err != nil {
		return err
	}
	if rated {
		fmt.Fprintln(c.out, "This order was already rated")

		return nil
	}

	err = c.restaurants.AddComment(ctx, f.num("restaurant"), usecase.CommentInput{
		PurchaseID: f.num("purchase"),
		Comment:    f.str("comment"),
		Rating:     f.float("rating"),
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Thanks for your review")

	return nil
}

func runFavorite(ctx context.Context, c *cli, f commandFlags) error {
	id := f.num("restaurant")
	if _, err := c.restaurants.FetchFavorites(ctx); err != nil {
		return err
	}

	var err error
	if f.on("remove") {
		err = c.restaurants.RemoveFavorite(ctx, id)
	} else {
		err = c.restaurants.AddFavorite(ctx, id)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Favorites: %v\n", c.store.State().Restaurant.Favorites.Data)

	return nil
}

func (c *cli) printPurchases(purchases []entity.Purchase) error {
	if len(purchases) == 0 {
		fmt.Fprintln(c.out, "No orders")

		return nil
	}

	w := c.table()
	fmt.Fprintln(w, "ID\tLISTING\tQTY\tTOTAL\tSTATUS\tMODE\tPLACED")
	for _, p := range purchases {
		mode := string(store.ModePickup)
		if p.IsDelivery {
			mode = string(store.ModeDelivery)
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\t%s\n",
			p.ID, p.ListingTitle, p.Quantity, p.TotalPrice.StringFixed(2), p.Status, mode, p.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	return w.Flush()
}

func joinNonEmpty(sep string, values ...string) string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			kept = append(kept, v)
		}
	}

	return strings.Join(kept, sep)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
