package services

import (
	"context"
	"net/http"

	"github.com/dennysh/Sistema-Contable/internal/apperrors"
	portsrepo "github.com/dennysh/Sistema-Contable/internal/core/ports/repositories"
	"github.com/dennysh/Sistema-Contable/internal/dto"
	"github.com/dennysh/Sistema-Contable/internal/models"
)

// ClienteService manages the customer catalogue.
type ClienteService struct {
	clienteRepo portsrepo.ClienteRepository
}

func NewClienteService(clienteRepo portsrepo.ClienteRepository) *ClienteService {
	return &ClienteService{clienteRepo: clienteRepo}
}

func (s *ClienteService) Crear(ctx context.Context, req dto.CreateClienteRequest) (int64, error) {
	cliente := models.Cliente{
		Nombre:    req.Nombre,
		RFC:       req.RFC,
		Direccion: req.Direccion,
		Telefono:  req.Telefono,
		Email:     req.Email,
	}
	id, err := s.clienteRepo.SaveCliente(ctx, cliente)
	if err != nil {
		return 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to save cliente", err)
	}
	return id, nil
}

func (s *ClienteService) Listar(ctx context.Context) ([]models.Cliente, error) {
	clientes, err := s.clienteRepo.ListClientes(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list clientes", err)
	}
	return clientes, nil
}

// ProveedorService manages the supplier catalogue.
type ProveedorService struct {
	proveedorRepo portsrepo.ProveedorRepository
}

func NewProveedorService(proveedorRepo portsrepo.ProveedorRepository) *ProveedorService {
	return &ProveedorService{proveedorRepo: proveedorRepo}
}

func (s *ProveedorService) Crear(ctx context.Context, req dto.CreateProveedorRequest) (int64, error) {
	proveedor := models.Proveedor{
		Nombre:    req.Nombre,
		RFC:       req.RFC,
		Direccion: req.Direccion,
		Telefono:  req.Telefono,
		Email:     req.Email,
	}
	id, err := s.proveedorRepo.SaveProveedor(ctx, proveedor)
	if err != nil {
		return 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to save proveedor", err)
	}
	return id, nil
}

func (s *ProveedorService) Listar(ctx context.Context) ([]models.Proveedor, error) {
	proveedores, err := s.proveedorRepo.ListProveedores(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list proveedores", err)
	}
	return proveedores, nil
}

// CuentaBancariaService manages bank accounts. New accounts open with
// saldo_actual equal to saldo_inicial.
type CuentaBancariaService struct {
	cuentaRepo portsrepo.CuentaBancariaRepository
}

func NewCuentaBancariaService(cuentaRepo portsrepo.CuentaBancariaRepository) *CuentaBancariaService {
	return &CuentaBancariaService{cuentaRepo: cuentaRepo}
}

func (s *CuentaBancariaService) Crear(ctx context.Context, req dto.CreateCuentaBancariaRequest) (int64, error) {
	cuenta := models.CuentaBancaria{
		Nombre:       req.Nombre,
		Banco:        req.Banco,
		NumeroCuenta: req.NumeroCuenta,
		SaldoInicial: req.SaldoInicial,
		SaldoActual:  req.SaldoInicial,
	}
	id, err := s.cuentaRepo.SaveCuenta(ctx, cuenta)
	if err != nil {
		return 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to save cuenta bancaria", err)
	}
	return id, nil
}

func (s *CuentaBancariaService) Listar(ctx context.Context) ([]models.CuentaBancaria, error) {
	cuentas, err := s.cuentaRepo.ListCuentas(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list cuentas bancarias", err)
	}
	return cuentas, nil
}

// ArticuloService manages the inventory catalogue.
type ArticuloService struct {
	articuloRepo portsrepo.ArticuloRepository
}

func NewArticuloService(articuloRepo portsrepo.ArticuloRepository) *ArticuloService {
	return &ArticuloService{articuloRepo: articuloRepo}
}

func (s *ArticuloService) Crear(ctx context.Context, req dto.CreateArticuloRequest) (int64, error) {
	unidad := req.UnidadMedida
	if unidad == "" {
		unidad = "PZA"
	}
	articulo := models.ArticuloInventario{
		Codigo:       req.Codigo,
		Nombre:       req.Nombre,
		Descripcion:  req.Descripcion,
		PrecioCompra: req.PrecioCompra,
		PrecioVenta:  req.PrecioVenta,
		StockActual:  req.StockActual,
		StockMinimo:  req.StockMinimo,
		UnidadMedida: unidad,
	}
	id, err := s.articuloRepo.SaveArticulo(ctx, articulo)
	if err != nil {
		return 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to save articulo", err)
	}
	return id, nil
}

func (s *ArticuloService) Listar(ctx context.Context) ([]models.ArticuloInventario, error) {
	articulos, err := s.articuloRepo.ListArticulos(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list articulos", err)
	}
	return articulos, nil
}

// EmpleadoService manages the employee catalogue.
type EmpleadoService struct {
	empleadoRepo portsrepo.EmpleadoRepository
}

func NewEmpleadoService(empleadoRepo portsrepo.EmpleadoRepository) *EmpleadoService {
	return &EmpleadoService{empleadoRepo: empleadoRepo}
}

func (s *EmpleadoService) Crear(ctx context.Context, req dto.CreateEmpleadoRequest) (int64, error) {
	empleado := models.Empleado{
		Nombre:          req.Nombre,
		ApellidoPaterno: req.ApellidoPaterno,
		ApellidoMaterno: req.ApellidoMaterno,
		RFC:             req.RFC,
		CURP:            req.CURP,
		SalarioDiario:   req.SalarioDiario,
		Puesto:          req.Puesto,
		Activo:          true,
	}
	if req.Activo != nil {
		empleado.Activo = *req.Activo
	}
	if req.FechaNacimiento != nil {
		nacimiento, err := dto.ParseFecha(*req.FechaNacimiento)
		if err != nil {
			return 0, apperrors.NewValidationError("fecha_nacimiento inválida, se espera el formato YYYY-MM-DD")
		}
		empleado.FechaNacimiento = &nacimiento
	}
	id, err := s.empleadoRepo.SaveEmpleado(ctx, empleado)
	if err != nil {
		return 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to save empleado", err)
	}
	return id, nil
}

func (s *EmpleadoService) Listar(ctx context.Context) ([]models.Empleado, error) {
	empleados, err := s.empleadoRepo.ListEmpleados(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list empleados", err)
	}
	return empleados, nil
}

// ActivoFijoService manages fixed assets.
type ActivoFijoService struct {
	activoRepo portsrepo.ActivoFijoRepository
}

func NewActivoFijoService(activoRepo portsrepo.ActivoFijoRepository) *ActivoFijoService {
	return &ActivoFijoService{activoRepo: activoRepo}
}

func (s *ActivoFijoService) Crear(ctx context.Context, req dto.CreateActivoFijoRequest) (int64, error) {
	fechaAdquisicion, err := dto.ParseFecha(req.FechaAdquisicion)
	if err != nil {
		return 0, apperrors.NewValidationError("fecha_adquisicion inválida, se espera el formato YYYY-MM-DD")
	}

	vidaUtil := 5
	if req.VidaUtilAnos != nil {
		vidaUtil = *req.VidaUtilAnos
	}
	estado := models.ActivoEstado(req.Estado)
	if estado == "" {
		estado = models.ActivoActivo
	}
	activo := models.ActivoFijo{
		Codigo:           req.Codigo,
		Nombre:           req.Nombre,
		Descripcion:      req.Descripcion,
		Categoria:        req.Categoria,
		ValorAdquisicion: req.ValorAdquisicion,
		FechaAdquisicion: fechaAdquisicion,
		VidaUtilAnos:     vidaUtil,
		ValorResidual:    req.ValorResidual,
		Estado:           estado,
	}
	id, err := s.activoRepo.SaveActivo(ctx, activo)
	if err != nil {
		return 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to save activo fijo", err)
	}
	return id, nil
}

func (s *ActivoFijoService) Listar(ctx context.Context) ([]models.ActivoFijo, error) {
	activos, err := s.activoRepo.ListActivos(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list activos fijos", err)
	}
	return activos, nil
}
