package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "catalog.v1.CatalogService"

// CatalogServiceServer is the server API for the catalog service.
// Every request and response is a google.protobuf.Struct holding the JSON
// form of the catalog types.
type CatalogServiceServer interface {
	CreateMonster(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	UpdateMonster(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetMonster(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetMonsterBySlug(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ListMonsters(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	DeleteMonster(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	RollMonsterHitPoints(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

	CreateSpell(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	UpdateSpell(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetSpell(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetSpellBySlug(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ListSpells(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	DeleteSpell(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

	UpsertTranslation(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	UpsertEnumLabel(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ListEnumLabels(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(CatalogServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

var catalogMethods = []struct {
	name string
	call unaryMethod
}{
	{"CreateMonster", CatalogServiceServer.CreateMonster},
	{"UpdateMonster", CatalogServiceServer.UpdateMonster},
	{"GetMonster", CatalogServiceServer.GetMonster},
	{"GetMonsterBySlug", CatalogServiceServer.GetMonsterBySlug},
	{"ListMonsters", CatalogServiceServer.ListMonsters},
	{"DeleteMonster", CatalogServiceServer.DeleteMonster},
	{"RollMonsterHitPoints", CatalogServiceServer.RollMonsterHitPoints},
	{"CreateSpell", CatalogServiceServer.CreateSpell},
	{"UpdateSpell", CatalogServiceServer.UpdateSpell},
	{"GetSpell", CatalogServiceServer.GetSpell},
	{"GetSpellBySlug", CatalogServiceServer.GetSpellBySlug},
	{"ListSpells", CatalogServiceServer.ListSpells},
	{"DeleteSpell", CatalogServiceServer.DeleteSpell},
	{"UpsertTranslation", CatalogServiceServer.UpsertTranslation},
	{"UpsertEnumLabel", CatalogServiceServer.UpsertEnumLabel},
	{"ListEnumLabels", CatalogServiceServer.ListEnumLabels},
}

// CatalogServiceDesc is the grpc.ServiceDesc for the catalog service
var CatalogServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods:     methodDescs(),
	Streams:     []grpc.StreamDesc{},
}

// RegisterCatalogServiceServer registers srv on s
func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogServiceDesc, srv)
}

// FullMethod returns the wire name of a catalog method
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

func methodDescs() []grpc.MethodDesc {
	descs := make([]grpc.MethodDesc, 0, len(catalogMethods))
	for _, m := range catalogMethods {
		descs = append(descs, grpc.MethodDesc{
			MethodName: m.name,
			Handler:    unaryHandler(m.name, m.call),
		})
	}
	return descs
}

func unaryHandler(name string, call unaryMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CatalogServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(name),
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(CatalogServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Client calls catalog methods over a gRPC connection
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a catalog client on cc
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Call invokes method with req and returns the response as a map
func (c *Client) Call(ctx context.Context, method string, req map[string]any) (map[string]any, error) {
	in, err := structpb.NewStruct(req)
	if err != nil {
		return nil, err
	}

	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out); err != nil {
		return nil, err
	}

	return out.AsMap(), nil
}
